package ports

import (
	"context"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// TeamService manages the caller's teams, gated by the capacity policy.
type TeamService interface {
	List(ctx context.Context) ([]domain.Team, error)
	Community(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, name string) (*domain.Team, error)
	AddPokemon(ctx context.Context, teamID, pokemonID string) (*domain.Team, error)
	Delete(ctx context.Context, teamID string) error
	DeleteAll(ctx context.Context) error
}
