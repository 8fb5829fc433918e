package service

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// BuildQuery maps filter state and a 1-based page into the query of
// GET /pokemons. Empty filters are omitted rather than sent as "".
func BuildQuery(filters domain.PokedexFilters, page int) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(domain.PokedexPageSize))
	setIfPresent(q, string(domain.FilterName), filters.Name)
	setIfPresent(q, string(domain.FilterType), filters.Type)
	setIfPresent(q, string(domain.FilterGeneration), filters.Generation)
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}
