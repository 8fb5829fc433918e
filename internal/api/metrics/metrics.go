// Package metrics defines the Prometheus metrics of the development backend.
// It is the single source of truth for metric names, labels and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devbackend"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route template (e.g. "/api/teams/:id/add")
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures handler latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and register attempts.
// Labels:
//   - action: "login" or "register"
//   - result: "ok" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and register attempts by result.",
	},
	[]string{"action", "result"},
)

// TeamsCreatedTotal counts created teams by owner role.
var TeamsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "teams_created_total",
		Help:      "Total number of teams created, by owner role.",
	},
	[]string{"role"},
)

// CapacityRejectionsTotal counts writes refused by the capacity policy.
// Label:
//   - reason: "team_limit" or "roster_full"
var CapacityRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "capacity_rejections_total",
		Help:      "Total number of team writes refused by the capacity policy.",
	},
	[]string{"reason"},
)
