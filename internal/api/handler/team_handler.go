package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokearena/teambuilder/internal/api/metrics"
	"github.com/pokearena/teambuilder/internal/core/domain"
)

// TeamStore persists trainer teams and enforces the capacity rules.
type TeamStore interface {
	Teams(ctx context.Context, ownerID string) ([]domain.Team, error)
	CommunityTeams(ctx context.Context, ownerID string) ([]domain.Team, error)
	CreateTeam(ctx context.Context, ownerID, name string) (domain.Team, error)
	AddPokemon(ctx context.Context, ownerID, teamID, pokemonID string) (domain.Team, error)
	DeleteTeam(ctx context.Context, ownerID, teamID string) error
	DeleteTeams(ctx context.Context, ownerID string) (int, error)
}

type TeamHandler struct {
	store TeamStore
}

func NewTeamHandler(store TeamStore) *TeamHandler {
	return &TeamHandler{store: store}
}

func (h *TeamHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	teams, err := h.store.Teams(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) Community(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	teams, err := h.store.CommunityTeams(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// Create handles POST /teams. Initial members in the payload are ignored;
// rosters grow through PUT /teams/:id/add only.
func (h *TeamHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	var req createTeamRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	team, err := h.store.CreateTeam(c.Request().Context(), userID, req.Name)
	if errors.Is(err, domain.ErrTeamLimitReached) {
		metrics.CapacityRejectionsTotal.WithLabelValues("team_limit").Inc()
	}
	if err != nil {
		return err
	}
	metrics.TeamsCreatedTotal.WithLabelValues(ctxRole(c)).Inc()
	return c.JSON(http.StatusCreated, team)
}

// AddPokemon handles PUT /teams/:id/add.
func (h *TeamHandler) AddPokemon(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	var req addPokemonRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	team, err := h.store.AddPokemon(c.Request().Context(), userID, c.Param("id"), req.PokemonID)
	if errors.Is(err, domain.ErrTeamFull) {
		metrics.CapacityRejectionsTotal.WithLabelValues("roster_full").Inc()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteTeam(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "team deleted"})
}

func (h *TeamHandler) DeleteAll(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	n, err := h.store.DeleteTeams(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "teams deleted", "deleted": n})
}
