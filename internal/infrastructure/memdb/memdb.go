// Package memdb is the in-memory store behind the development backend. It
// applies the same capacity rules as the production backend so the client can
// be exercised end to end without one.
package memdb

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/service"
)

const (
	DefaultPageLimit = domain.PokedexPageSize
	MaxPageLimit     = 100
)

type userRecord struct {
	user         domain.User
	passwordHash string
	favoriteID   string
}

type teamRecord struct {
	id         string
	name       string
	ownerID    string
	pokemonIDs []string
}

// DB holds users, teams and the seeded Pokédex.
type DB struct {
	mu       sync.RWMutex
	users    map[string]*userRecord
	byEmail  map[string]string
	teams    map[string]*teamRecord
	order    []string // team ids in creation order
	pokemons []domain.Pokemon
	byID     map[string]domain.Pokemon
	newID    func() string
}

// Option customises a DB.
type Option func(*DB)

// WithIDGenerator replaces uuid.NewString for user and team ids.
func WithIDGenerator(fn func() string) Option {
	return func(db *DB) { db.newID = fn }
}

// WithPokemons replaces the seeded Pokédex.
func WithPokemons(p []domain.Pokemon) Option {
	return func(db *DB) { db.pokemons = slices.Clone(p) }
}

// New returns a DB seeded with the default Pokédex.
func New(opts ...Option) *DB {
	db := &DB{
		users:    make(map[string]*userRecord),
		byEmail:  make(map[string]string),
		teams:    make(map[string]*teamRecord),
		pokemons: seedPokemons(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(db)
	}
	db.byID = make(map[string]domain.Pokemon, len(db.pokemons))
	for _, p := range db.pokemons {
		db.byID[p.ID] = p
	}
	return db
}

// ── Users ───────────────────────────────────────────────────────────────────

// CreateUser stores a new account. Email and username are unique,
// case-insensitively.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash, role string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := db.byEmail[key]; ok {
		return domain.User{}, domain.ErrUserExists
	}
	for _, rec := range db.users {
		if strings.EqualFold(rec.user.Username, username) {
			return domain.User{}, domain.ErrUserExists
		}
	}

	rec := &userRecord{
		user: domain.User{
			ID:       db.newID(),
			Username: username,
			Email:    email,
			Role:     domain.Role{Name: role},
		},
		passwordHash: passwordHash,
	}
	db.users[rec.user.ID] = rec
	db.byEmail[key] = rec.user.ID
	return rec.user, nil
}

// Credentials returns the user and password hash registered under email.
func (db *DB) Credentials(ctx context.Context, email string) (domain.User, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, "", err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	id, ok := db.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, "", domain.ErrNotFound
	}
	rec := db.users[id]
	return db.userLocked(rec), rec.passwordHash, nil
}

// User returns the profile of id with its favorite team populated.
func (db *DB) User(ctx context.Context, id string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	rec, ok := db.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return db.userLocked(rec), nil
}

// ProfileUpdate is a partial profile edit. Nil fields are left as they are;
// an empty FavoriteTeam clears the favorite.
type ProfileUpdate struct {
	Username     *string
	Avatar       *string
	FavoriteTeam *string
}

// UpdateProfile applies u to the account id. The favorite team must be one of
// the account's own teams.
func (db *DB) UpdateProfile(ctx context.Context, id string, u ProfileUpdate) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if u.Username != nil && !strings.EqualFold(*u.Username, rec.user.Username) {
		for _, other := range db.users {
			if other != rec && strings.EqualFold(other.user.Username, *u.Username) {
				return domain.User{}, domain.ErrUserExists
			}
		}
	}
	if u.FavoriteTeam != nil && *u.FavoriteTeam != "" {
		team, ok := db.teams[*u.FavoriteTeam]
		if !ok || team.ownerID != id {
			return domain.User{}, domain.ErrTeamNotFound
		}
	}

	if u.Username != nil {
		rec.user.Username = *u.Username
	}
	if u.Avatar != nil {
		rec.user.Avatar = *u.Avatar
	}
	if u.FavoriteTeam != nil {
		rec.favoriteID = *u.FavoriteTeam
	}
	return db.userLocked(rec), nil
}

func (db *DB) userLocked(rec *userRecord) domain.User {
	u := rec.user
	u.FavoriteTeam = nil
	if t, ok := db.teams[rec.favoriteID]; ok {
		team := db.teamLocked(t, false)
		u.FavoriteTeam = &team
	}
	return u
}

// ── Pokédex ─────────────────────────────────────────────────────────────────

// PokemonQuery filters and paginates the Pokédex. Zero fields do not filter.
type PokemonQuery struct {
	Name       string
	Type       string
	Generation int
	Page       int
	Limit      int
}

// Pokemons returns one page of matches ordered by Pokédex number. A page past
// the end is empty but still reports the page count.
func (db *DB) Pokemons(ctx context.Context, q PokemonQuery) (domain.PokedexPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.PokedexPage{}, err
	}
	page := max(q.Page, 1)
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	limit = min(limit, MaxPageLimit)
	name := strings.ToLower(strings.TrimSpace(q.Name))
	typ := strings.ToLower(strings.TrimSpace(q.Type))

	db.mu.RLock()
	matches := make([]domain.Pokemon, 0, len(db.pokemons))
	for _, p := range db.pokemons {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if typ != "" && !p.HasType(typ) {
			continue
		}
		if q.Generation != 0 && p.Generation != q.Generation {
			continue
		}
		matches = append(matches, p)
	}
	db.mu.RUnlock()

	slices.SortFunc(matches, func(a, b domain.Pokemon) int { return a.PokedexNumber - b.PokedexNumber })

	total := (len(matches) + limit - 1) / limit
	out := domain.PokedexPage{Pokemons: []domain.Pokemon{}, TotalPages: total}
	if from := (page - 1) * limit; from < len(matches) {
		out.Pokemons = matches[from:min(from+limit, len(matches))]
	}
	return out, nil
}

// ── Teams ───────────────────────────────────────────────────────────────────

// Teams lists the teams of ownerID in creation order.
func (db *DB) Teams(ctx context.Context, ownerID string) ([]domain.Team, error) {
	return db.listTeams(ctx, func(t *teamRecord) bool { return t.ownerID == ownerID }, false)
}

// CommunityTeams lists every team not owned by ownerID, with its trainer.
func (db *DB) CommunityTeams(ctx context.Context, ownerID string) ([]domain.Team, error) {
	return db.listTeams(ctx, func(t *teamRecord) bool { return t.ownerID != ownerID }, true)
}

func (db *DB) listTeams(ctx context.Context, keep func(*teamRecord) bool, withTrainer bool) ([]domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := []domain.Team{}
	for _, id := range db.order {
		if t := db.teams[id]; keep(t) {
			out = append(out, db.teamLocked(t, withTrainer))
		}
	}
	return out, nil
}

// CreateTeam adds an empty team for owner. Non-admins are held to
// domain.MaxTeamsPerTrainer.
func (db *DB) CreateTeam(ctx context.Context, ownerID, name string) (domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return domain.Team{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Team{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.users[ownerID]
	if !ok {
		return domain.Team{}, domain.ErrNotFound
	}
	if !service.CanCreateTeam(rec.user, db.countLocked(ownerID)) {
		return domain.Team{}, domain.ErrTeamLimitReached
	}

	t := &teamRecord{id: db.newID(), name: name, ownerID: ownerID}
	db.teams[t.id] = t
	db.order = append(db.order, t.id)
	return db.teamLocked(t, false), nil
}

// AddPokemon appends pokemonID to one of owner's teams. Duplicates are
// allowed; the roster size is not.
func (db *DB) AddPokemon(ctx context.Context, ownerID, teamID, pokemonID string) (domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return domain.Team{}, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.teams[teamID]
	if !ok || t.ownerID != ownerID {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if _, ok := db.byID[pokemonID]; !ok {
		return domain.Team{}, fmt.Errorf("pokemon %q: %w", pokemonID, domain.ErrNotFound)
	}
	if !service.CanAddMember(db.teamLocked(t, false)) {
		return domain.Team{}, domain.ErrTeamFull
	}
	t.pokemonIDs = append(t.pokemonIDs, pokemonID)
	return db.teamLocked(t, false), nil
}

// DeleteTeam removes one of owner's teams and clears it as a favorite.
func (db *DB) DeleteTeam(ctx context.Context, ownerID, teamID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.teams[teamID]
	if !ok || t.ownerID != ownerID {
		return domain.ErrTeamNotFound
	}
	db.deleteLocked(t)
	return nil
}

// DeleteTeams removes every team of owner and returns how many were removed.
func (db *DB) DeleteTeams(ctx context.Context, ownerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	n := 0
	for _, id := range slices.Clone(db.order) {
		if t := db.teams[id]; t.ownerID == ownerID {
			db.deleteLocked(t)
			n++
		}
	}
	return n, nil
}

func (db *DB) deleteLocked(t *teamRecord) {
	delete(db.teams, t.id)
	db.order = slices.DeleteFunc(db.order, func(id string) bool { return id == t.id })
	if owner, ok := db.users[t.ownerID]; ok && owner.favoriteID == t.id {
		owner.favoriteID = ""
	}
}

func (db *DB) countLocked(ownerID string) int {
	n := 0
	for _, t := range db.teams {
		if t.ownerID == ownerID {
			n++
		}
	}
	return n
}

func (db *DB) teamLocked(t *teamRecord, withTrainer bool) domain.Team {
	team := domain.Team{ID: t.id, Name: t.name, Pokemons: make([]domain.Pokemon, 0, len(t.pokemonIDs))}
	for _, id := range t.pokemonIDs {
		team.Pokemons = append(team.Pokemons, db.byID[id])
	}
	if withTrainer {
		if owner, ok := db.users[t.ownerID]; ok {
			team.Trainer = &domain.Trainer{ID: owner.user.ID, Username: owner.user.Username}
		}
	}
	return team
}
