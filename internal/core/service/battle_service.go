package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
)

type battleService struct {
	gateway ports.TeamGateway
	session CurrentUser
}

// NewBattleService returns a BattleService implementation.
func NewBattleService(gateway ports.TeamGateway, session CurrentUser) ports.BattleService {
	return &battleService{gateway: gateway, session: session}
}

// Arena loads the caller's teams and the community teams concurrently.
// Either failure fails the whole load.
func (s *battleService) Arena(ctx context.Context) (domain.Arena, error) {
	if _, ok := s.session.User(); !ok {
		return domain.Arena{}, domain.ErrNoSession
	}

	var arena domain.Arena
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.gateway.ListTeams(gctx)
		if err != nil {
			return fmt.Errorf("load own teams: %w", err)
		}
		arena.Mine = teams
		return nil
	})
	g.Go(func() error {
		teams, err := s.gateway.ListCommunityTeams(gctx)
		if err != nil {
			return fmt.Errorf("load community teams: %w", err)
		}
		arena.Community = teams
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Arena{}, err
	}
	return arena, nil
}

// Fight resolves a battle between one of the caller's teams and a community
// team. Empty rosters are refused before any stat is computed.
func (s *battleService) Fight(ctx context.Context, ownerTeamID, rivalTeamID string) (domain.BattleReport, error) {
	arena, err := s.Arena(ctx)
	if err != nil {
		return domain.BattleReport{}, fmt.Errorf("battle: %w", err)
	}

	owner, ok := domain.FindTeam(arena.Mine, ownerTeamID)
	if !ok {
		return domain.BattleReport{}, fmt.Errorf("battle: own team %q: %w", ownerTeamID, domain.ErrTeamNotFound)
	}
	rival, ok := domain.FindTeam(arena.Community, rivalTeamID)
	if !ok {
		return domain.BattleReport{}, fmt.Errorf("battle: rival team %q: %w", rivalTeamID, domain.ErrTeamNotFound)
	}
	return Battle(owner, rival)
}

// Battle computes the report for two already loaded teams.
func Battle(owner, rival domain.Team) (domain.BattleReport, error) {
	if owner.IsEmpty() {
		return domain.BattleReport{}, fmt.Errorf("battle: team %q: %w", owner.Name, domain.ErrEmptyRoster)
	}
	if rival.IsEmpty() {
		return domain.BattleReport{}, fmt.Errorf("battle: team %q: %w", rival.Name, domain.ErrEmptyRoster)
	}

	ownerTotals := *Aggregate(&owner)
	rivalTotals := *Aggregate(&rival)
	return domain.BattleReport{
		Owner:       owner,
		Rival:       rival,
		OwnerTotals: ownerTotals,
		RivalTotals: rivalTotals,
		Outcome:     Resolve(ownerTotals, rivalTotals),
		Axes:        StatAxes(ownerTotals, rivalTotals),
	}, nil
}
