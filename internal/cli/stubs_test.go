package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

type stubSession struct {
	session    *domain.Session
	restoreErr error
	loginFn    func(email, password string) error
	registerFn func(username, email, password string) error
	loggedOut  int
}

func (s *stubSession) Token() string {
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *stubSession) Restore(context.Context) error { return s.restoreErr }

func (s *stubSession) Login(_ context.Context, email, password string) error {
	if err := s.loginFn(email, password); err != nil {
		return err
	}
	s.session = &domain.Session{Token: "tok", User: domain.User{Username: "ash", Email: email}}
	return nil
}

func (s *stubSession) Register(_ context.Context, username, email, password string) error {
	if err := s.registerFn(username, email, password); err != nil {
		return err
	}
	s.session = &domain.Session{Token: "tok", User: domain.User{Username: username, Email: email}}
	return nil
}

func (s *stubSession) Logout(context.Context) {
	s.loggedOut++
	s.session = nil
}

func (s *stubSession) UpdateUser(_ context.Context, patch domain.UserPatch) error {
	if s.session == nil {
		return domain.ErrNoSession
	}
	s.session.User = patch.Apply(s.session.User)
	return nil
}

func (s *stubSession) Current() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *stubSession) User() (domain.User, bool) {
	sess, ok := s.Current()
	return sess.User, ok
}

type stubTeams struct {
	listFn      func() ([]domain.Team, error)
	communityFn func() ([]domain.Team, error)
	createFn    func(name string) (*domain.Team, error)
	addFn       func(teamID, pokemonID string) (*domain.Team, error)
	deleteFn    func(teamID string) error
	deleteAllFn func() error
}

func (s *stubTeams) List(context.Context) ([]domain.Team, error)      { return s.listFn() }
func (s *stubTeams) Community(context.Context) ([]domain.Team, error) { return s.communityFn() }
func (s *stubTeams) Create(_ context.Context, name string) (*domain.Team, error) {
	return s.createFn(name)
}
func (s *stubTeams) AddPokemon(_ context.Context, teamID, pokemonID string) (*domain.Team, error) {
	return s.addFn(teamID, pokemonID)
}
func (s *stubTeams) Delete(_ context.Context, teamID string) error { return s.deleteFn(teamID) }
func (s *stubTeams) DeleteAll(context.Context) error                { return s.deleteAllFn() }

type stubBattle struct {
	arenaFn func() (domain.Arena, error)
	fightFn func(mine, rival string) (domain.BattleReport, error)
}

func (s *stubBattle) Arena(context.Context) (domain.Arena, error) { return s.arenaFn() }
func (s *stubBattle) Fight(_ context.Context, mine, rival string) (domain.BattleReport, error) {
	return s.fightFn(mine, rival)
}

type stubProfile struct {
	profileFn func() (*domain.User, error)
	updateFn  func(in ports.ProfileUpdateInput) (*domain.User, error)
}

func (s *stubProfile) Profile(context.Context) (*domain.User, error) { return s.profileFn() }
func (s *stubProfile) Update(_ context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	return s.updateFn(in)
}

type stubPokedex struct {
	filters domain.PokedexFilters
	page    int
	total   int
	loads   []int
	loadFn  func(page int) (domain.PokedexPage, error)
}

func (s *stubPokedex) SetFilters(f domain.PokedexFilters) {
	s.filters = f
	s.page = 1
}

func (s *stubPokedex) GoTo(page int) {
	s.page = max(page, 1)
	if s.total > 0 {
		s.page = min(s.page, s.total)
	}
}

func (s *stubPokedex) Page() (int, int) { return s.page, s.total }

func (s *stubPokedex) Load(context.Context) (domain.PokedexPage, error) {
	s.loads = append(s.loads, s.page)
	res, err := s.loadFn(s.page)
	if err == nil {
		s.total = max(res.TotalPages, 1)
	}
	return res, err
}

type harness struct {
	session *stubSession
	teams   *stubTeams
	battle  *stubBattle
	profile *stubProfile
	pokedex *stubPokedex
	out     bytes.Buffer
	errOut  bytes.Buffer
}

func newHarness(signedIn bool) *harness {
	h := &harness{
		session: &stubSession{},
		teams:   &stubTeams{},
		battle:  &stubBattle{},
		profile: &stubProfile{},
		pokedex: &stubPokedex{page: 1},
	}
	if signedIn {
		h.session.session = &domain.Session{
			Token: "tok",
			User:  domain.User{ID: "u1", Username: "ash", Email: "ash@pallet.town", Role: domain.Role{Name: domain.RoleUser}},
		}
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()
	svc := Services{
		Session:   h.session,
		Teams:     h.teams,
		Battle:    h.battle,
		Profile:   h.profile,
		Pokedex:   h.pokedex,
		Validator: validation.New(),
		Log:       zerolog.Nop(),
	}
	return Run(context.Background(), svc, args, &h.out, &h.errOut)
}

func team(id, name string, size int) domain.Team {
	t := domain.Team{ID: id, Name: name, Pokemons: []domain.Pokemon{}}
	for i := 0; i < size; i++ {
		t.Pokemons = append(t.Pokemons, domain.Pokemon{ID: "p", Name: "pikachu", Stats: domain.Stats{HP: 10}})
	}
	return t
}
