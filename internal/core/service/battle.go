package service

import "github.com/pokearena/teambuilder/internal/core/domain"

// Resolve compares the scalar sums of two stat totals. Callers must not
// resolve a battle where either roster is empty.
func Resolve(owner, rival domain.Stats) domain.BattleOutcome {
	o, r := owner.Sum(), rival.Sum()
	switch {
	case o > r:
		return domain.BattleOutcome{Winner: domain.WinnerOwner, Margin: o - r}
	case r > o:
		return domain.BattleOutcome{Winner: domain.WinnerRival, Margin: r - o}
	default:
		return domain.BattleOutcome{Winner: domain.WinnerTie}
	}
}

// StatAxes lays the two totals side by side in the order the battle chart
// draws them.
func StatAxes(owner, rival domain.Stats) []domain.StatAxis {
	axis := func(label string, o, r int) domain.StatAxis {
		return domain.StatAxis{Label: label, Owner: o, Rival: r, Max: domain.StatAxisMax}
	}
	return []domain.StatAxis{
		axis("HP", owner.HP, rival.HP),
		axis("Attack", owner.Attack, rival.Attack),
		axis("Defense", owner.Defense, rival.Defense),
		axis("Speed", owner.Speed, rival.Speed),
		axis("Sp. Atk", owner.SpAtk, rival.SpAtk),
		axis("Sp. Def", owner.SpDef, rival.SpDef),
	}
}
