package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
)

// CurrentUser exposes the signed-in user to services that gate on it.
type CurrentUser interface {
	User() (domain.User, bool)
}

type teamService struct {
	gateway ports.TeamGateway
	session CurrentUser
	log     zerolog.Logger
}

// NewTeamService returns a TeamService implementation.
func NewTeamService(gateway ports.TeamGateway, session CurrentUser, log zerolog.Logger) ports.TeamService {
	return &teamService{gateway: gateway, session: session, log: log}
}

func (s *teamService) List(ctx context.Context) ([]domain.Team, error) {
	if _, err := s.user(); err != nil {
		return nil, err
	}
	teams, err := s.gateway.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) Community(ctx context.Context) ([]domain.Team, error) {
	if _, err := s.user(); err != nil {
		return nil, err
	}
	teams, err := s.gateway.ListCommunityTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list community teams: %w", err)
	}
	return teams, nil
}

// Create checks the capacity policy against a fresh team count and only
// calls the backend when the policy allows it.
func (s *teamService) Create(ctx context.Context, name string) (*domain.Team, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	teams, err := s.gateway.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("create team: load teams: %w", err)
	}
	if !CanCreateTeam(user, len(teams)) {
		s.log.Debug().Str("username", user.Username).Int("teams", len(teams)).Msg("team creation refused by policy")
		return nil, fmt.Errorf("create team: %w (%s)", domain.ErrTeamLimitReached, TeamQuota(user, len(teams)))
	}

	team, err := s.gateway.CreateTeam(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	s.log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

// AddPokemon appends a Pokémon to one of the caller's teams. A full roster
// is refused without calling the backend.
func (s *teamService) AddPokemon(ctx context.Context, teamID, pokemonID string) (*domain.Team, error) {
	if _, err := s.user(); err != nil {
		return nil, err
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: select a team first", domain.ErrValidation)
	}
	if pokemonID == "" {
		return nil, fmt.Errorf("%w: pokemon is required", domain.ErrValidation)
	}

	teams, err := s.gateway.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("add pokemon: load teams: %w", err)
	}
	team, ok := domain.FindTeam(teams, teamID)
	if !ok {
		return nil, fmt.Errorf("add pokemon: %w", domain.ErrTeamNotFound)
	}
	if !CanAddMember(team) {
		return nil, fmt.Errorf("add pokemon: %w", domain.ErrTeamFull)
	}

	updated, err := s.gateway.AddPokemon(ctx, teamID, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("add pokemon: %w", err)
	}
	s.log.Info().Str("team_id", teamID).Str("pokemon_id", pokemonID).Int("size", updated.Size()).Msg("pokemon added")
	return updated, nil
}

func (s *teamService) Delete(ctx context.Context, teamID string) error {
	if _, err := s.user(); err != nil {
		return err
	}
	if teamID == "" {
		return fmt.Errorf("%w: team is required", domain.ErrValidation)
	}
	if err := s.gateway.DeleteTeam(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	s.log.Info().Str("team_id", teamID).Msg("team deleted")
	return nil
}

func (s *teamService) DeleteAll(ctx context.Context) error {
	if _, err := s.user(); err != nil {
		return err
	}
	if err := s.gateway.DeleteAllTeams(ctx); err != nil {
		return fmt.Errorf("delete all teams: %w", err)
	}
	s.log.Info().Msg("all teams deleted")
	return nil
}

func (s *teamService) user() (domain.User, error) {
	u, ok := s.session.User()
	if !ok {
		return domain.User{}, domain.ErrNoSession
	}
	return u, nil
}
