// Package cli implements the teambuilder subcommands. Every invocation
// restores the persisted session, runs one action and renders its result.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

// ErrUsage reports a malformed command line. The caller prints usage and
// exits with status 2.
var ErrUsage = errors.New("usage error")

// Pokedex is the browsing state behind the pokedex command.
type Pokedex interface {
	SetFilters(f domain.PokedexFilters)
	GoTo(page int)
	Page() (page, totalPages int)
	Load(ctx context.Context) (domain.PokedexPage, error)
}

// Services are the client operations the commands drive.
type Services struct {
	Session   ports.SessionService
	Teams     ports.TeamService
	Battle    ports.BattleService
	Profile   ports.ProfileService
	Pokedex   Pokedex
	Validator *validation.Validator
	Log       zerolog.Logger
}

type command struct {
	summary string
	run     func(ctx context.Context, r *runner, args []string) error
}

var commands = map[string]command{
	"login":            {"sign in with -email and -password", runLogin},
	"register":         {"create an account and sign in", runRegister},
	"logout":           {"forget the stored session", runLogout},
	"whoami":           {"show the signed-in trainer", runWhoami},
	"pokedex":          {"browse Pokémon [-name -type -gen -page]", runPokedex},
	"teams":            {"list your teams", runTeams},
	"teams-create":     {"create a team -name", runTeamsCreate},
	"teams-add":        {"add a Pokémon -team -pokemon", runTeamsAdd},
	"teams-delete":     {"delete a team -team", runTeamsDelete},
	"teams-delete-all": {"delete every team you own -yes", runTeamsDeleteAll},
	"community":        {"list other trainers' teams", runCommunity},
	"battle":           {"compare teams -mine -rival", runBattle},
	"profile":          {"show your profile", runProfile},
	"profile-update":   {"edit your profile [-username -avatar -favorite]", runProfileUpdate},
}

type runner struct {
	svc    Services
	out    io.Writer
	errOut io.Writer
}

// Run dispatches args[0] to its command.
func Run(ctx context.Context, svc Services, args []string, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if len(args) == 0 {
		Usage(errOut)
		return ErrUsage
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		Usage(out)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(errOut, "unknown command %q\n\n", name)
		Usage(errOut)
		return ErrUsage
	}

	if err := svc.Session.Restore(ctx); err != nil {
		return err
	}

	r := &runner{svc: svc, out: out, errOut: errOut}
	err := cmd.run(ctx, r, args[1:])
	if errors.Is(err, domain.ErrUnauthorized) {
		svc.Session.Logout(ctx)
		svc.Log.Info().Str("command", name).Msg("backend rejected the session, logged out")
		return fmt.Errorf("%w: session rejected by the backend, please log in again", err)
	}
	if errors.Is(err, domain.ErrNoSession) {
		return fmt.Errorf("%w: run `teambuilder login` first", err)
	}
	return err
}

// Usage prints the command list.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: teambuilder <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	width := 0
	for name := range commands {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-*s  %s\n", width, name, commands[name].summary)
	}
}

func (r *runner) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	return fs
}

// parse wraps flag errors in ErrUsage. -h is not an error.
func (r *runner) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	return nil
}

// notify prints a load failure and lets the command fall back to empty data.
// Session rejections stay errors so Run can log the user out.
func (r *runner) notify(what string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNoSession) {
		return err
	}
	fmt.Fprintf(r.errOut, "could not load %s: %v\n", what, err)
	r.svc.Log.Warn().Err(err).Str("screen", what).Msg("load failed")
	return nil
}

func required(flagName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: -%s is required", ErrUsage, flagName)
	}
	return nil
}
