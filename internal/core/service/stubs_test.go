package service

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubGateway struct {
	mu    sync.Mutex
	calls map[string]int

	loginFn         func(ctx context.Context, in ports.LoginInput) (*domain.AuthResult, error)
	registerFn      func(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error)
	listPokemonsFn  func(ctx context.Context, q url.Values) (*domain.PokedexPage, error)
	listTeamsFn     func(ctx context.Context) ([]domain.Team, error)
	communityFn     func(ctx context.Context) ([]domain.Team, error)
	createTeamFn    func(ctx context.Context, name string) (*domain.Team, error)
	addPokemonFn    func(ctx context.Context, teamID, pokemonID string) (*domain.Team, error)
	deleteTeamFn    func(ctx context.Context, teamID string) error
	deleteAllFn     func(ctx context.Context) error
	getProfileFn    func(ctx context.Context) (*domain.User, error)
	updateProfileFn func(ctx context.Context, in ports.ProfileUpdateInput) (*domain.User, error)
}

var errNotStubbed = errors.New("not stubbed")

func (g *stubGateway) record(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls == nil {
		g.calls = make(map[string]int)
	}
	g.calls[name]++
}

func (g *stubGateway) count(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[name]
}

func (g *stubGateway) total() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func (g *stubGateway) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthResult, error) {
	g.record("login")
	if g.loginFn == nil {
		return nil, errNotStubbed
	}
	return g.loginFn(ctx, in)
}

func (g *stubGateway) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	g.record("register")
	if g.registerFn == nil {
		return nil, errNotStubbed
	}
	return g.registerFn(ctx, in)
}

func (g *stubGateway) ListPokemons(ctx context.Context, q url.Values) (*domain.PokedexPage, error) {
	g.record("list_pokemons")
	if g.listPokemonsFn == nil {
		return nil, errNotStubbed
	}
	return g.listPokemonsFn(ctx, q)
}

func (g *stubGateway) ListTeams(ctx context.Context) ([]domain.Team, error) {
	g.record("list_teams")
	if g.listTeamsFn == nil {
		return nil, errNotStubbed
	}
	return g.listTeamsFn(ctx)
}

func (g *stubGateway) ListCommunityTeams(ctx context.Context) ([]domain.Team, error) {
	g.record("community")
	if g.communityFn == nil {
		return nil, errNotStubbed
	}
	return g.communityFn(ctx)
}

func (g *stubGateway) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	g.record("create_team")
	if g.createTeamFn == nil {
		return nil, errNotStubbed
	}
	return g.createTeamFn(ctx, name)
}

func (g *stubGateway) AddPokemon(ctx context.Context, teamID, pokemonID string) (*domain.Team, error) {
	g.record("add_pokemon")
	if g.addPokemonFn == nil {
		return nil, errNotStubbed
	}
	return g.addPokemonFn(ctx, teamID, pokemonID)
}

func (g *stubGateway) DeleteTeam(ctx context.Context, teamID string) error {
	g.record("delete_team")
	if g.deleteTeamFn == nil {
		return errNotStubbed
	}
	return g.deleteTeamFn(ctx, teamID)
}

func (g *stubGateway) DeleteAllTeams(ctx context.Context) error {
	g.record("delete_all")
	if g.deleteAllFn == nil {
		return errNotStubbed
	}
	return g.deleteAllFn(ctx)
}

func (g *stubGateway) GetProfile(ctx context.Context) (*domain.User, error) {
	g.record("get_profile")
	if g.getProfileFn == nil {
		return nil, errNotStubbed
	}
	return g.getProfileFn(ctx)
}

func (g *stubGateway) UpdateProfile(ctx context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	g.record("update_profile")
	if g.updateProfileFn == nil {
		return nil, errNotStubbed
	}
	return g.updateProfileFn(ctx, in)
}

type stubStorage struct {
	data      map[string]string
	getErr    error
	setErr    error
	setErrKey string
}

func newStubStorage() *stubStorage {
	return &stubStorage{data: make(map[string]string)}
}

func (s *stubStorage) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubStorage) Set(_ context.Context, key, value string) error {
	if s.setErr != nil && (s.setErrKey == "" || s.setErrKey == key) {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *stubStorage) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// staticUser satisfies CurrentUser.
type staticUser struct {
	user *domain.User
}

func (s staticUser) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"id": "u1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func trainer(role string) domain.User {
	return domain.User{ID: "u1", Username: "ash", Email: "ash@pallet.town", Role: domain.Role{Name: role}}
}

func mon(id string, s domain.Stats) domain.Pokemon {
	return domain.Pokemon{ID: id, Name: id, Types: []string{"normal"}, Stats: s}
}

func teamOf(id string, size int) domain.Team {
	t := domain.Team{ID: id, Name: "team-" + id}
	for i := 0; i < size; i++ {
		t.Pokemons = append(t.Pokemons, mon(id, domain.Stats{HP: 10}))
	}
	return t
}
