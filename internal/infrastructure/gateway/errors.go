package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// APIError is a non-2xx answer from the backend. errors.Is matches it against
// the domain sentinel implied by its status and message.
type APIError struct {
	Endpoint string
	Status   int
	Message  string

	// auth marks the unauthenticated /auth endpoints, where 401 means the
	// credentials were rejected rather than the session.
	auth bool
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s: %d %s", e.Endpoint, e.Status, msg)
}

func (e *APIError) Unwrap() error {
	if err := e.capacityError(); err != nil {
		return err
	}
	switch {
	case e.Status == http.StatusUnauthorized && e.auth:
		return domain.ErrInvalidCredentials
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusConflict:
		return domain.ErrUserExists
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status >= 500:
		return domain.ErrBackendUnavailable
	default:
		return nil
	}
}

// capacityError recognises the backend's roster and team-count refusals.
// They arrive as 400 or 403 and only from the two endpoints that grow a
// trainer's collection.
func (e *APIError) capacityError() error {
	if e.Status != http.StatusBadRequest && e.Status != http.StatusForbidden {
		return nil
	}
	m := strings.ToLower(e.Message)
	switch {
	case e.Endpoint == endpointAddPokemon && (strings.Contains(m, "full") || strings.Contains(m, "lleno")):
		return domain.ErrTeamFull
	case e.Endpoint == endpointCreateTeam && (strings.Contains(m, "limit") || strings.Contains(m, "máximo") || strings.Contains(m, "maximum")):
		return domain.ErrTeamLimitReached
	default:
		return nil
	}
}

// errorBody accepts both {"message": ...} and {"error": ...} envelopes.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
