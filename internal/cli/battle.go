package cli

import (
	"context"
	"fmt"
)

// runBattle fights -mine against -rival. Without either flag it lists the
// teams that can be picked.
func runBattle(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("battle")
	mine := fs.String("mine", "", "id of one of your teams")
	rival := fs.String("rival", "", "id of a community team")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	if *mine == "" && *rival == "" {
		arena, err := r.svc.Battle.Arena(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, "Your teams:")
		renderTeams(r.out, arena.Mine, false)
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Community teams:")
		renderTeams(r.out, arena.Community, true)
		return nil
	}
	if err := required("mine", *mine); err != nil {
		return err
	}
	if err := required("rival", *rival); err != nil {
		return err
	}

	report, err := r.svc.Battle.Fight(ctx, *mine, *rival)
	if err != nil {
		return err
	}
	renderBattle(r.out, report)
	return nil
}
