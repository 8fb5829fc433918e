package service

import (
	"fmt"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// The capacity checks are advisory: they let the client refuse an action up
// front, but the backend enforces the same limits on every call.

// CanCreateTeam reports whether user may create another team given the
// number of teams they already own.
func CanCreateTeam(user domain.User, currentTeamCount int) bool {
	return user.Role.IsAdmin() || currentTeamCount < domain.MaxTeamsPerTrainer
}

// CanAddMember reports whether the roster has room for one more Pokémon.
func CanAddMember(team domain.Team) bool {
	return len(team.Pokemons) < domain.MaxRosterSize
}

// TeamQuota renders the "owned / allowed" label of the teams screen.
func TeamQuota(user domain.User, currentTeamCount int) string {
	if user.Role.IsAdmin() {
		return fmt.Sprintf("%d / ∞", currentTeamCount)
	}
	return fmt.Sprintf("%d / %d", currentTeamCount, domain.MaxTeamsPerTrainer)
}
