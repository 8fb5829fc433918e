package domain

const (
	// MaxRosterSize is the number of Pokémon a team can hold.
	MaxRosterSize = 6
	// MaxTeamsPerTrainer bounds how many teams a non-admin trainer may own.
	MaxTeamsPerTrainer = 2
)

// Trainer is the owner reference embedded in community team listings.
type Trainer struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
}

// Team is an ordered roster of Pokémon owned by a trainer.
type Team struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Trainer  *Trainer  `json:"trainer,omitempty"`
	Pokemons []Pokemon `json:"pokemons"`
}

// Size returns the number of Pokémon on the roster.
func (t Team) Size() int {
	return len(t.Pokemons)
}

// IsEmpty reports whether the roster has no members.
func (t Team) IsEmpty() bool {
	return len(t.Pokemons) == 0
}

// OwnerName returns the trainer username, or "" for the caller's own teams.
func (t Team) OwnerName() string {
	if t.Trainer == nil {
		return ""
	}
	return t.Trainer.Username
}

// FindTeam returns the team with the given id.
func FindTeam(teams []Team, id string) (Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
