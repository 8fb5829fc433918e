package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/infrastructure/memdb"
)

// ProfileStore reads and edits trainer profiles.
type ProfileStore interface {
	User(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, u memdb.ProfileUpdate) (domain.User, error)
}

type ProfileHandler struct {
	store ProfileStore
}

func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Get handles GET /users/profile with the favorite team populated.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	user, err := h.store.User(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/profile. Omitted fields are left unchanged.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		if trimmed == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "username must not be blank")
		}
		req.Username = &trimmed
	}

	user, err := h.store.UpdateProfile(c.Request().Context(), userID, memdb.ProfileUpdate{
		Username:     req.Username,
		Avatar:       req.Avatar,
		FavoriteTeam: req.FavoriteTeam,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
