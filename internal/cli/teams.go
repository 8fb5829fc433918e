package cli

import (
	"context"
	"fmt"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/service"
)

func runTeams(ctx context.Context, r *runner, args []string) error {
	if err := r.parse(r.flags("teams"), args); err != nil {
		return err
	}
	user, ok := r.svc.Session.User()
	if !ok {
		return domain.ErrNoSession
	}

	teams, err := r.svc.Teams.List(ctx)
	if err != nil {
		if nerr := r.notify("teams", err); nerr != nil {
			return nerr
		}
		teams = nil
	}

	fmt.Fprintf(r.out, "Teams %s\n", service.TeamQuota(user, len(teams)))
	if len(teams) == 0 {
		fmt.Fprintln(r.out, "You have no teams yet. Create one with `teambuilder teams-create -name <name>`.")
		return nil
	}
	renderTeams(r.out, teams, false)
	return nil
}

func runTeamsCreate(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("teams-create")
	name := fs.String("name", "", "team name")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}

	team, err := r.svc.Teams.Create(ctx, *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Created team %q (%s).\n", team.Name, team.ID)
	return nil
}

func runTeamsAdd(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("teams-add")
	teamID := fs.String("team", "", "team id")
	pokemonID := fs.String("pokemon", "", "pokemon id, as listed by the pokedex command")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if err := required("team", *teamID); err != nil {
		return err
	}
	if err := required("pokemon", *pokemonID); err != nil {
		return err
	}

	team, err := r.svc.Teams.AddPokemon(ctx, *teamID, *pokemonID)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Added to %q, roster %d/%d.\n", team.Name, team.Size(), domain.MaxRosterSize)
	return nil
}

func runTeamsDelete(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("teams-delete")
	teamID := fs.String("team", "", "team id")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if err := required("team", *teamID); err != nil {
		return err
	}

	if err := r.svc.Teams.Delete(ctx, *teamID); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Team deleted.")
	return nil
}

func runTeamsDeleteAll(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("teams-delete-all")
	yes := fs.Bool("yes", false, "confirm deleting every team")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if !*yes {
		return fmt.Errorf("%w: deleting all teams needs -yes", ErrUsage)
	}

	if err := r.svc.Teams.DeleteAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "All teams deleted.")
	return nil
}

func runCommunity(ctx context.Context, r *runner, args []string) error {
	if err := r.parse(r.flags("community"), args); err != nil {
		return err
	}
	teams, err := r.svc.Teams.Community(ctx)
	if err != nil {
		if nerr := r.notify("community teams", err); nerr != nil {
			return nerr
		}
		teams = nil
	}
	if len(teams) == 0 {
		fmt.Fprintln(r.out, "No community teams yet.")
		return nil
	}
	renderTeams(r.out, teams, true)
	return nil
}
