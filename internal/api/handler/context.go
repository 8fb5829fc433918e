package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokearena/teambuilder/internal/api/middleware"
)

// ctxUserID extracts the caller injected by the Auth middleware. Its absence
// means the route was mounted without Auth.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

func ctxRole(c echo.Context) string {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role
}

// bindValid binds the request body into req and runs the echo Validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
