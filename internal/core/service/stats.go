package service

import "github.com/pokearena/teambuilder/internal/core/domain"

// Aggregate sums the stats of every roster member. It returns nil when no
// team is given and zero totals for an empty roster.
func Aggregate(team *domain.Team) *domain.Stats {
	if team == nil {
		return nil
	}
	var totals domain.Stats
	for _, p := range team.Pokemons {
		totals = totals.Add(p.Stats)
	}
	return &totals
}
