package domain

// Stats holds the six base stats of a Pokémon, or their sum over a roster.
type Stats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"spAtk"`
	SpDef   int `json:"spDef"`
	Speed   int `json:"speed"`
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		HP:      s.HP + o.HP,
		Attack:  s.Attack + o.Attack,
		Defense: s.Defense + o.Defense,
		SpAtk:   s.SpAtk + o.SpAtk,
		SpDef:   s.SpDef + o.SpDef,
		Speed:   s.Speed + o.Speed,
	}
}

// Sum collapses the six fields into one scalar.
func (s Stats) Sum() int {
	return s.HP + s.Attack + s.Defense + s.SpAtk + s.SpDef + s.Speed
}

// Pokemon is read-only reference data served by the Pokédex.
type Pokemon struct {
	ID            string   `json:"_id"`
	PokedexNumber int      `json:"pokedexNumber"`
	Name          string   `json:"name"`
	Sprite        string   `json:"sprite"`
	Types         []string `json:"types"`
	Generation    int      `json:"generation,omitempty"`
	Stats         Stats    `json:"stats"`
}

// HasType reports whether the Pokémon carries the given type tag.
func (p Pokemon) HasType(tag string) bool {
	for _, t := range p.Types {
		if t == tag {
			return true
		}
	}
	return false
}
