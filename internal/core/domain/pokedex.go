package domain

// PokedexPageSize is the fixed number of Pokémon requested per page.
const PokedexPageSize = 20

// PokemonTypes lists the type tags the Pokédex can be filtered by.
var PokemonTypes = []string{
	"normal", "fire", "water", "grass", "electric", "ice", "fighting",
	"poison", "ground", "flying", "psychic", "bug", "rock", "ghost",
	"dragon", "steel", "dark", "fairy",
}

// Generations lists the generations the Pokédex can be filtered by.
var Generations = []int{1, 2, 3, 4, 5}

// FilterField names one of the Pokédex filter inputs.
type FilterField string

const (
	FilterName       FilterField = "name"
	FilterType       FilterField = "type"
	FilterGeneration FilterField = "generation"
)

// PokedexFilters is the filter state of the Pokédex screen.
// An empty field means no filter on that field.
type PokedexFilters struct {
	Name       string
	Type       string
	Generation string
}

// IsZero reports whether no filter is set.
func (f PokedexFilters) IsZero() bool {
	return f == PokedexFilters{}
}

// PokedexPage is one page of the backend listing.
type PokedexPage struct {
	Pokemons   []Pokemon `json:"pokemons"`
	TotalPages int       `json:"totalPages"`
}
