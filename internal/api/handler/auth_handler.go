package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokearena/teambuilder/internal/api/metrics"
	"github.com/pokearena/teambuilder/internal/core/domain"
)

// AuthService registers and signs in trainers.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a trainer account and returns its token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	return c.JSON(http.StatusCreated, res)
}

// Login authenticates a trainer and returns a JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	return c.JSON(http.StatusOK, res)
}
