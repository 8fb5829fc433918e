package memdb

import (
	"fmt"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

const spriteURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"

type seedEntry struct {
	number     int
	name       string
	generation int
	types      []string
	stats      domain.Stats
}

// hp, attack, defense, spAtk, spDef, speed
func st(hp, atk, def, spa, spd, spe int) domain.Stats {
	return domain.Stats{HP: hp, Attack: atk, Defense: def, SpAtk: spa, SpDef: spd, Speed: spe}
}

var seedPokedex = []seedEntry{
	{1, "bulbasaur", 1, []string{"grass", "poison"}, st(45, 49, 49, 65, 65, 45)},
	{4, "charmander", 1, []string{"fire"}, st(39, 52, 43, 60, 50, 65)},
	{6, "charizard", 1, []string{"fire", "flying"}, st(78, 84, 78, 109, 85, 100)},
	{7, "squirtle", 1, []string{"water"}, st(44, 48, 65, 50, 64, 43)},
	{9, "blastoise", 1, []string{"water"}, st(79, 83, 100, 85, 105, 78)},
	{25, "pikachu", 1, []string{"electric"}, st(35, 55, 40, 50, 50, 90)},
	{39, "jigglypuff", 1, []string{"normal", "fairy"}, st(115, 45, 20, 45, 25, 20)},
	{52, "meowth", 1, []string{"normal"}, st(40, 45, 35, 40, 40, 90)},
	{54, "psyduck", 1, []string{"water"}, st(50, 52, 48, 65, 50, 55)},
	{63, "abra", 1, []string{"psychic"}, st(25, 20, 15, 105, 55, 90)},
	{66, "machop", 1, []string{"fighting"}, st(70, 80, 50, 35, 35, 35)},
	{74, "geodude", 1, []string{"rock", "ground"}, st(40, 80, 100, 30, 30, 20)},
	{92, "gastly", 1, []string{"ghost", "poison"}, st(30, 35, 30, 100, 35, 80)},
	{94, "gengar", 1, []string{"ghost", "poison"}, st(60, 65, 60, 130, 75, 110)},
	{129, "magikarp", 1, []string{"water"}, st(20, 10, 55, 15, 20, 80)},
	{130, "gyarados", 1, []string{"water", "flying"}, st(95, 125, 79, 60, 100, 81)},
	{131, "lapras", 1, []string{"water", "ice"}, st(130, 85, 80, 85, 95, 60)},
	{133, "eevee", 1, []string{"normal"}, st(55, 55, 50, 45, 65, 55)},
	{143, "snorlax", 1, []string{"normal"}, st(160, 110, 65, 65, 110, 30)},
	{149, "dragonite", 1, []string{"dragon", "flying"}, st(91, 134, 95, 100, 100, 80)},
	{150, "mewtwo", 1, []string{"psychic"}, st(106, 110, 90, 154, 90, 130)},

	{152, "chikorita", 2, []string{"grass"}, st(45, 49, 65, 49, 65, 45)},
	{155, "cyndaquil", 2, []string{"fire"}, st(39, 52, 43, 60, 50, 65)},
	{158, "totodile", 2, []string{"water"}, st(50, 65, 64, 44, 48, 43)},
	{196, "espeon", 2, []string{"psychic"}, st(65, 65, 60, 130, 95, 110)},
	{197, "umbreon", 2, []string{"dark"}, st(95, 65, 110, 60, 130, 65)},
	{208, "steelix", 2, []string{"steel", "ground"}, st(75, 85, 200, 55, 65, 30)},
	{212, "scizor", 2, []string{"bug", "steel"}, st(70, 130, 100, 55, 80, 65)},
	{248, "tyranitar", 2, []string{"rock", "dark"}, st(100, 134, 110, 95, 100, 61)},

	{252, "treecko", 3, []string{"grass"}, st(40, 45, 35, 65, 55, 70)},
	{255, "torchic", 3, []string{"fire"}, st(45, 60, 40, 70, 50, 45)},
	{258, "mudkip", 3, []string{"water"}, st(50, 70, 50, 50, 50, 40)},
	{282, "gardevoir", 3, []string{"psychic", "fairy"}, st(68, 65, 65, 125, 115, 80)},
	{359, "absol", 3, []string{"dark"}, st(65, 130, 60, 75, 60, 75)},
	{373, "salamence", 3, []string{"dragon", "flying"}, st(95, 135, 80, 110, 80, 100)},
	{376, "metagross", 3, []string{"steel", "psychic"}, st(80, 135, 130, 95, 90, 70)},

	{387, "turtwig", 4, []string{"grass"}, st(55, 68, 64, 45, 55, 31)},
	{390, "chimchar", 4, []string{"fire"}, st(44, 58, 44, 58, 44, 61)},
	{393, "piplup", 4, []string{"water"}, st(53, 51, 53, 61, 56, 40)},
	{445, "garchomp", 4, []string{"dragon", "ground"}, st(108, 130, 95, 80, 85, 102)},
	{448, "lucario", 4, []string{"fighting", "steel"}, st(70, 110, 70, 115, 70, 90)},

	{495, "snivy", 5, []string{"grass"}, st(45, 45, 55, 45, 55, 63)},
	{498, "tepig", 5, []string{"fire"}, st(65, 63, 45, 45, 45, 45)},
	{501, "oshawott", 5, []string{"water"}, st(55, 55, 45, 63, 45, 45)},
	{571, "zoroark", 5, []string{"dark"}, st(60, 105, 60, 120, 60, 105)},
	{609, "chandelure", 5, []string{"ghost", "fire"}, st(60, 55, 90, 145, 90, 80)},
	{635, "hydreigon", 5, []string{"dark", "dragon"}, st(92, 105, 90, 125, 90, 98)},
}

// PokemonID is the stable id of the seeded Pokémon with this Pokédex number.
func PokemonID(number int) string {
	return fmt.Sprintf("pkm-%03d", number)
}

func seedPokemons() []domain.Pokemon {
	out := make([]domain.Pokemon, 0, len(seedPokedex))
	for _, e := range seedPokedex {
		out = append(out, domain.Pokemon{
			ID:            PokemonID(e.number),
			PokedexNumber: e.number,
			Name:          e.name,
			Sprite:        fmt.Sprintf(spriteURL, e.number),
			Types:         e.types,
			Generation:    e.generation,
			Stats:         e.stats,
		})
	}
	return out
}
