package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/core/screen"
)

// PokedexBrowser holds the filter and pagination state of the Pokédex screen.
// Any filter change resets the page to 1 so the next load never asks for a
// page that is out of range under the new filter.
type PokedexBrowser struct {
	gateway ports.PokedexGateway
	loader  screen.Loader[domain.PokedexPage]

	mu         sync.Mutex
	filters    domain.PokedexFilters
	page       int
	totalPages int // 0 until the first successful load
}

// NewPokedexBrowser starts on page 1 with no filters.
func NewPokedexBrowser(gateway ports.PokedexGateway) *PokedexBrowser {
	return &PokedexBrowser{gateway: gateway, page: 1}
}

// SetFilter updates one filter field and resets the page.
func (b *PokedexBrowser) SetFilter(field domain.FilterField, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch field {
	case domain.FilterName:
		b.filters.Name = value
	case domain.FilterType:
		b.filters.Type = value
	case domain.FilterGeneration:
		b.filters.Generation = value
	default:
		return fmt.Errorf("%w: unknown filter %q", domain.ErrValidation, field)
	}
	b.page = 1
	return nil
}

// SetFilters replaces the whole filter state and resets the page.
func (b *PokedexBrowser) SetFilters(f domain.PokedexFilters) {
	b.mu.Lock()
	b.filters = f
	b.page = 1
	b.mu.Unlock()
}

// ClearFilters drops every filter and resets the page.
func (b *PokedexBrowser) ClearFilters() {
	b.SetFilters(domain.PokedexFilters{})
}

// GoTo selects a page, clamped to [1, totalPages] once the page count is known.
func (b *PokedexBrowser) GoTo(page int) {
	b.mu.Lock()
	b.page = clampPage(page, b.totalPages)
	b.mu.Unlock()
}

// Next advances one page unless already on the last known page.
func (b *PokedexBrowser) Next() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.totalPages > 0 && b.page >= b.totalPages {
		return false
	}
	b.page++
	return true
}

// Prev moves back one page unless already on page 1.
func (b *PokedexBrowser) Prev() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page <= 1 {
		return false
	}
	b.page--
	return true
}

// Page returns the selected page and the last known page count (0 before
// the first load).
func (b *PokedexBrowser) Page() (page, totalPages int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page, b.totalPages
}

// Filters returns the current filter state.
func (b *PokedexBrowser) Filters() domain.PokedexFilters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filters
}

// Query returns the backend query for the current state.
func (b *PokedexBrowser) Query() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BuildQuery(b.filters, b.page)
}

// Load fetches the selected page. A load superseded by a newer one returns
// screen.ErrStale and does not touch the page count.
func (b *PokedexBrowser) Load(ctx context.Context) (domain.PokedexPage, error) {
	query := b.Query()
	page, err := screen.Run(ctx, &b.loader, func(ctx context.Context) (domain.PokedexPage, error) {
		res, err := b.gateway.ListPokemons(ctx, query)
		if err != nil {
			return domain.PokedexPage{}, fmt.Errorf("list pokemons: %w", err)
		}
		return *res, nil
	})
	if err != nil {
		return domain.PokedexPage{}, err
	}

	b.mu.Lock()
	b.totalPages = max(page.TotalPages, 1)
	b.mu.Unlock()
	return page, nil
}

// State exposes the load state of the screen.
func (b *PokedexBrowser) State() screen.State[domain.PokedexPage] {
	return b.loader.State()
}

func clampPage(page, total int) int {
	page = max(page, 1)
	if total > 0 {
		page = min(page, total)
	}
	return page
}
