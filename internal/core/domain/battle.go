package domain

// Winner designates the side that won a battle.
type Winner string

const (
	WinnerOwner Winner = "owner"
	WinnerRival Winner = "rival"
	WinnerTie   Winner = "tie"
)

// StatAxisMax is the ceiling of a single aggregated stat axis: six members at 255.
const StatAxisMax = 1530

// BattleOutcome is the result of comparing two stat totals. Never persisted.
type BattleOutcome struct {
	Winner Winner `json:"winner"`
	Margin int    `json:"margin"`
}

// StatAxis is one row of the side-by-side stat comparison.
type StatAxis struct {
	Label string
	Owner int
	Rival int
	Max   int
}

// Arena holds the teams a battle can be chosen from.
type Arena struct {
	Mine      []Team
	Community []Team
}

// BattleReport is everything the battle screen renders after a fight.
type BattleReport struct {
	Owner       Team
	Rival       Team
	OwnerTotals Stats
	RivalTotals Stats
	Outcome     BattleOutcome
	Axes        []StatAxis
}
