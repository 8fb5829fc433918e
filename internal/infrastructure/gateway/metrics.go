package gateway

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teambuilder"

// RequestsTotal counts backend calls.
// Labels:
//   - endpoint: logical operation (e.g. "login", "add_pokemon")
//   - code: HTTP status code, or "error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of backend requests by endpoint and status code.",
	},
	[]string{"endpoint", "code"},
)

// RequestDuration measures backend round trips, including body decoding.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

func codeLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
