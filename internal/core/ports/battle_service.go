package ports

import (
	"context"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// BattleService compares one of the caller's teams against a community team.
type BattleService interface {
	Arena(ctx context.Context) (domain.Arena, error)
	Fight(ctx context.Context, ownerTeamID, rivalTeamID string) (domain.BattleReport, error)
}
