package cli

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/infrastructure/gateway"
)

func TestRun_Usage(t *testing.T) {
	h := newHarness(false)
	if err := h.run(t); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if err := h.run(t, "evolve"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage for unknown command, got %v", err)
	}
	if !strings.Contains(h.errOut.String(), "teams-delete-all") {
		t.Fatalf("expected the command list, got %q", h.errOut.String())
	}
	if err := h.run(t, "help"); err != nil {
		t.Fatalf("help: %v", err)
	}
}

func TestRun_RestoreFailure(t *testing.T) {
	h := newHarness(false)
	h.session.restoreErr = errors.New("disk gone")
	if err := h.run(t, "whoami"); err == nil || !strings.Contains(err.Error(), "disk gone") {
		t.Fatalf("expected restore error, got %v", err)
	}
}

func TestRun_UnauthorizedLogsOut(t *testing.T) {
	h := newHarness(true)
	h.teams.listFn = func() ([]domain.Team, error) { return nil, domain.ErrUnauthorized }

	err := h.run(t, "teams")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if h.session.loggedOut != 1 || h.session.session != nil {
		t.Fatalf("expected a local logout")
	}
}

func TestRun_ForbiddenKeepsSession(t *testing.T) {
	h := newHarness(true)
	h.teams.deleteFn = func(string) error {
		return &gateway.APIError{Endpoint: "delete_team", Status: http.StatusForbidden, Message: "forbidden"}
	}

	err := h.run(t, "teams-delete", "-team", "someone-elses")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if h.session.loggedOut != 0 || h.session.session == nil {
		t.Fatalf("a refused action must not end the session")
	}
	if strings.Contains(err.Error(), "log in again") {
		t.Fatalf("unexpected re-login hint: %v", err)
	}
}

func TestRun_NoSessionHint(t *testing.T) {
	h := newHarness(false)
	err := h.run(t, "teams")
	if !errors.Is(err, domain.ErrNoSession) || !strings.Contains(err.Error(), "teambuilder login") {
		t.Fatalf("expected login hint, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	h := newHarness(false)
	h.session.loginFn = func(email, password string) error {
		if password != "pikachu" {
			return domain.ErrInvalidCredentials
		}
		return nil
	}

	if err := h.run(t, "login", "-email", "ash@pallet.town", "-password", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := h.run(t, "login", "-email", "ash@pallet.town", "-password", "pikachu"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(h.out.String(), "Welcome back, ash") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		calls   int
	}{
		{"ok", []string{"-username", "ash", "-email", "ash@pallet.town", "-password", "pikachu", "-confirm", "pikachu"}, nil, 1},
		{"mismatch", []string{"-username", "ash", "-email", "ash@pallet.town", "-password", "pikachu", "-confirm", "raichu"}, domain.ErrValidation, 0},
		{"short password", []string{"-username", "ash", "-email", "ash@pallet.town", "-password", "pika", "-confirm", "pika"}, domain.ErrValidation, 0},
		{"bad email", []string{"-username", "ash", "-email", "ash", "-password", "pikachu", "-confirm", "pikachu"}, domain.ErrValidation, 0},
		{"bad flag", []string{"-nickname", "ash"}, ErrUsage, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(false)
			calls := 0
			h.session.registerFn = func(username, email, password string) error {
				calls++
				return nil
			}

			err := h.run(t, append([]string{"register"}, tt.args...)...)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if calls != tt.calls {
				t.Fatalf("expected %d register calls, got %d", tt.calls, calls)
			}
		})
	}
}

func TestLogoutAndWhoami(t *testing.T) {
	h := newHarness(true)
	if err := h.run(t, "whoami"); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(h.out.String(), "ash <ash@pallet.town>") {
		t.Fatalf("unexpected whoami output %q", h.out.String())
	}

	if err := h.run(t, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(h.out.String(), "Logged out.") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
	if err := h.run(t, "logout"); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if !strings.Contains(h.out.String(), "Not logged in.") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestPokedex_FiltersAndPage(t *testing.T) {
	h := newHarness(false)
	h.pokedex.loadFn = func(page int) (domain.PokedexPage, error) {
		return domain.PokedexPage{
			Pokemons:   []domain.Pokemon{{ID: "pkm-004", PokedexNumber: 4, Name: "charmander", Types: []string{"fire"}}},
			TotalPages: 3,
		}, nil
	}

	if err := h.run(t, "pokedex", "-type", "Fire", "-gen", "1", "-page", "2"); err != nil {
		t.Fatalf("pokedex: %v", err)
	}
	want := domain.PokedexFilters{Type: "fire", Generation: "1"}
	if h.pokedex.filters != want {
		t.Fatalf("expected filters %+v, got %+v", want, h.pokedex.filters)
	}
	if len(h.pokedex.loads) != 1 || h.pokedex.loads[0] != 2 {
		t.Fatalf("expected a single load of page 2, got %v", h.pokedex.loads)
	}
	if !strings.Contains(h.out.String(), "page 2/3") || !strings.Contains(h.out.String(), "charmander") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestPokedex_PageOutOfRange(t *testing.T) {
	h := newHarness(false)
	h.pokedex.loadFn = func(page int) (domain.PokedexPage, error) {
		if page > 2 {
			return domain.PokedexPage{TotalPages: 2}, nil
		}
		return domain.PokedexPage{Pokemons: []domain.Pokemon{{Name: "eevee"}}, TotalPages: 2}, nil
	}

	if err := h.run(t, "pokedex", "-page", "9"); err != nil {
		t.Fatalf("pokedex: %v", err)
	}
	if len(h.pokedex.loads) != 2 || h.pokedex.loads[1] != 2 {
		t.Fatalf("expected a reload of the last page, got %v", h.pokedex.loads)
	}
	if !strings.Contains(h.out.String(), "eevee") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestPokedex_InvalidFilters(t *testing.T) {
	for _, args := range [][]string{{"-type", "cosmic"}, {"-gen", "9"}} {
		h := newHarness(false)
		h.pokedex.loadFn = func(int) (domain.PokedexPage, error) {
			t.Fatalf("load must not run for %v", args)
			return domain.PokedexPage{}, nil
		}
		if err := h.run(t, append([]string{"pokedex"}, args...)...); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %v, got %v", args, err)
		}
	}
}

func TestPokedex_LoadFailureFallsBackToEmpty(t *testing.T) {
	h := newHarness(false)
	h.pokedex.loadFn = func(int) (domain.PokedexPage, error) {
		return domain.PokedexPage{}, domain.ErrBackendUnavailable
	}

	if err := h.run(t, "pokedex"); err != nil {
		t.Fatalf("expected the failure to be a notification, got %v", err)
	}
	if !strings.Contains(h.errOut.String(), "could not load") {
		t.Fatalf("expected a notification, got %q", h.errOut.String())
	}
	if !strings.Contains(h.out.String(), "No Pokémon") {
		t.Fatalf("expected the empty view, got %q", h.out.String())
	}
}

func TestTeams_ListShowsQuota(t *testing.T) {
	h := newHarness(true)
	h.teams.listFn = func() ([]domain.Team, error) {
		return []domain.Team{team("t1", "Kanto", 3), team("t2", "Johto", 0)}, nil
	}

	if err := h.run(t, "teams"); err != nil {
		t.Fatalf("teams: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"Teams 2 / 2", "Kanto", "3/6", "Johto"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestTeams_Mutations(t *testing.T) {
	h := newHarness(true)
	h.teams.createFn = func(name string) (*domain.Team, error) {
		if name == "Hoenn" {
			return nil, domain.ErrTeamLimitReached
		}
		tm := team("t9", name, 0)
		return &tm, nil
	}
	h.teams.addFn = func(teamID, pokemonID string) (*domain.Team, error) {
		tm := team(teamID, "Kanto", 4)
		return &tm, nil
	}
	deleted := ""
	h.teams.deleteFn = func(teamID string) error {
		deleted = teamID
		return nil
	}
	deletedAll := false
	h.teams.deleteAllFn = func() error {
		deletedAll = true
		return nil
	}

	if err := h.run(t, "teams-create", "-name", "Sinnoh"); err != nil || !strings.Contains(h.out.String(), "t9") {
		t.Fatalf("create: %v %q", err, h.out.String())
	}
	if err := h.run(t, "teams-create", "-name", "Hoenn"); !errors.Is(err, domain.ErrTeamLimitReached) {
		t.Fatalf("expected ErrTeamLimitReached, got %v", err)
	}
	if err := h.run(t, "teams-create"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage without -name, got %v", err)
	}
	if err := h.run(t, "teams-add", "-team", "t1", "-pokemon", "pkm-025"); err != nil || !strings.Contains(h.out.String(), "4/6") {
		t.Fatalf("add: %v %q", err, h.out.String())
	}
	if err := h.run(t, "teams-delete", "-team", "t1"); err != nil || deleted != "t1" {
		t.Fatalf("delete: %v %q", err, deleted)
	}
	if err := h.run(t, "teams-delete-all"); !errors.Is(err, ErrUsage) || deletedAll {
		t.Fatalf("expected -yes to be required, got %v", err)
	}
	if err := h.run(t, "teams-delete-all", "-yes"); err != nil || !deletedAll {
		t.Fatalf("delete all: %v", err)
	}
}

func TestCommunity(t *testing.T) {
	h := newHarness(true)
	rival := team("t5", "Rocket", 2)
	rival.Trainer = &domain.Trainer{Username: "jessie"}
	h.teams.communityFn = func() ([]domain.Team, error) { return []domain.Team{rival}, nil }

	if err := h.run(t, "community"); err != nil {
		t.Fatalf("community: %v", err)
	}
	if !strings.Contains(h.out.String(), "jessie") {
		t.Fatalf("expected trainer column, got %q", h.out.String())
	}
}

func TestBattle(t *testing.T) {
	h := newHarness(true)
	h.battle.fightFn = func(mine, rival string) (domain.BattleReport, error) {
		if rival == "empty" {
			return domain.BattleReport{}, domain.ErrEmptyRoster
		}
		return domain.BattleReport{
			Owner:       team(mine, "Kanto", 1),
			Rival:       team(rival, "Rocket", 1),
			OwnerTotals: domain.Stats{HP: 900},
			RivalTotals: domain.Stats{HP: 850},
			Outcome:     domain.BattleOutcome{Winner: domain.WinnerOwner, Margin: 50},
			Axes:        []domain.StatAxis{{Label: "HP", Owner: 900, Rival: 850}},
		}, nil
	}

	if err := h.run(t, "battle", "-mine", "t1", "-rival", "t5"); err != nil {
		t.Fatalf("battle: %v", err)
	}
	if !strings.Contains(h.out.String(), "Kanto wins by 50!") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
	if err := h.run(t, "battle", "-mine", "t1", "-rival", "empty"); !errors.Is(err, domain.ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
	if err := h.run(t, "battle", "-mine", "t1"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage without -rival, got %v", err)
	}
}

func TestBattle_ListsArena(t *testing.T) {
	h := newHarness(true)
	h.battle.arenaFn = func() (domain.Arena, error) {
		return domain.Arena{Mine: []domain.Team{team("t1", "Kanto", 1)}, Community: []domain.Team{team("t5", "Rocket", 1)}}, nil
	}
	if err := h.run(t, "battle"); err != nil {
		t.Fatalf("battle: %v", err)
	}
	if !strings.Contains(h.out.String(), "Kanto") || !strings.Contains(h.out.String(), "Rocket") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestProfileUpdate_SendsOnlyGivenFlags(t *testing.T) {
	h := newHarness(true)
	var got ports.ProfileUpdateInput
	h.profile.updateFn = func(in ports.ProfileUpdateInput) (*domain.User, error) {
		got = in
		return &domain.User{Username: "ash", Email: "ash@pallet.town"}, nil
	}

	if err := h.run(t, "profile-update", "-favorite", ""); err != nil {
		t.Fatalf("profile-update: %v", err)
	}
	if got.Username != nil || got.Avatar != nil {
		t.Fatalf("unexpected fields sent: %+v", got)
	}
	if got.FavoriteTeam == nil || *got.FavoriteTeam != "" {
		t.Fatalf("expected an explicit empty favorite, got %v", got.FavoriteTeam)
	}

	if err := h.run(t, "profile-update"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage with no flags, got %v", err)
	}
}

func TestProfile(t *testing.T) {
	h := newHarness(true)
	h.profile.profileFn = func() (*domain.User, error) {
		return &domain.User{Username: "ash", Email: "ash@pallet.town", FavoriteTeam: &domain.Team{ID: "t1", Name: "Kanto"}}, nil
	}
	if err := h.run(t, "profile"); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !strings.Contains(h.out.String(), "Kanto (t1)") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}
