package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

func runPokedex(ctx context.Context, r *runner, args []string) error {
	var filters domain.PokedexFilters
	fs := r.flags("pokedex")
	fs.StringVar(&filters.Name, "name", "", "name contains")
	fs.StringVar(&filters.Type, "type", "", "type tag ("+strings.Join(domain.PokemonTypes, ", ")+")")
	fs.StringVar(&filters.Generation, "gen", "", "generation number")
	page := fs.Int("page", 1, "page number")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	filters.Type = strings.ToLower(strings.TrimSpace(filters.Type))
	filters.Generation = strings.TrimSpace(filters.Generation)
	if err := r.svc.Validator.Var("type", filters.Type, "omitempty,oneof="+strings.Join(domain.PokemonTypes, " ")); err != nil {
		return err
	}
	if err := r.svc.Validator.Var("gen", filters.Generation, "omitempty,oneof="+generationChoices()); err != nil {
		return err
	}

	r.svc.Pokedex.SetFilters(filters)
	r.svc.Pokedex.GoTo(*page)
	res, err := r.svc.Pokedex.Load(ctx)
	if err != nil {
		if nerr := r.notify("pokédex", err); nerr != nil {
			return nerr
		}
		res = domain.PokedexPage{}
	}

	current, total := r.svc.Pokedex.Page()
	if err == nil && *page > total && total > 0 {
		fmt.Fprintf(r.errOut, "page %d is out of range, showing page %d\n", *page, total)
		r.svc.Pokedex.GoTo(total)
		if res, err = r.svc.Pokedex.Load(ctx); err != nil {
			if nerr := r.notify("pokédex", err); nerr != nil {
				return nerr
			}
			res = domain.PokedexPage{}
		}
		current, total = r.svc.Pokedex.Page()
	}

	renderPokedex(r.out, res, current, max(total, 1))
	return nil
}

func generationChoices() string {
	parts := make([]string, len(domain.Generations))
	for i, g := range domain.Generations {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, " ")
}

func renderPokedex(w io.Writer, res domain.PokedexPage, page, total int) {
	fmt.Fprintf(w, "Pokédex page %d/%d\n", page, total)
	if len(res.Pokemons) == 0 {
		fmt.Fprintln(w, "No Pokémon match these filters.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tID\tNAME\tTYPES\tTOTAL")
	for _, p := range res.Pokemons {
		fmt.Fprintf(tw, "%03d\t%s\t%s\t%s\t%d\n", p.PokedexNumber, p.ID, p.Name, strings.Join(p.Types, "/"), p.Stats.Sum())
	}
	_ = tw.Flush()
}
