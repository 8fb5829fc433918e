package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/infrastructure/memdb"
)

// PokedexStore serves the reference Pokédex.
type PokedexStore interface {
	Pokemons(ctx context.Context, q memdb.PokemonQuery) (domain.PokedexPage, error)
}

type PokemonHandler struct {
	store PokedexStore
}

func NewPokemonHandler(store PokedexStore) *PokemonHandler {
	return &PokemonHandler{store: store}
}

// List handles GET /pokemons?page&limit&name&type&generation.
func (h *PokemonHandler) List(c echo.Context) error {
	var q pokemonsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	page, err := h.store.Pokemons(c.Request().Context(), memdb.PokemonQuery{
		Name:       q.Name,
		Type:       q.Type,
		Generation: q.Generation,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
