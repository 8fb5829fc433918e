package ports

import (
	"context"
	"net/url"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// AuthGateway covers the unauthenticated /auth endpoints.
type AuthGateway interface {
	Login(ctx context.Context, in LoginInput) (*domain.AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error)
}

// PokedexGateway lists reference Pokémon data.
type PokedexGateway interface {
	ListPokemons(ctx context.Context, query url.Values) (*domain.PokedexPage, error)
}

// TeamGateway covers the /teams endpoints.
type TeamGateway interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListCommunityTeams(ctx context.Context) ([]domain.Team, error)
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	AddPokemon(ctx context.Context, teamID, pokemonID string) (*domain.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
	DeleteAllTeams(ctx context.Context) error
}

// ProfileGateway covers the /users/profile endpoints.
type ProfileGateway interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in ProfileUpdateInput) (*domain.User, error)
}

// Gateway is the full backend surface.
type Gateway interface {
	AuthGateway
	PokedexGateway
	TeamGateway
	ProfileGateway
}

// TokenSource yields the bearer token attached to authenticated calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}
