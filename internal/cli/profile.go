package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/pokearena/teambuilder/internal/core/ports"
)

func runProfile(ctx context.Context, r *runner, args []string) error {
	if err := r.parse(r.flags("profile"), args); err != nil {
		return err
	}
	u, err := r.svc.Profile.Profile(ctx)
	if err != nil {
		return err
	}
	renderUser(r.out, *u)
	return nil
}

// runProfileUpdate sends only the flags given on the command line;
// -favorite "" clears the favorite team.
func runProfileUpdate(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("profile-update")
	username := fs.String("username", "", "new trainer name")
	avatar := fs.String("avatar", "", "avatar image URL")
	favorite := fs.String("favorite", "", "id of your favorite team, empty to clear")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	var in ports.ProfileUpdateInput
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			in.Username = username
		case "avatar":
			in.Avatar = avatar
		case "favorite":
			in.FavoriteTeam = favorite
		}
	})
	if in.IsEmpty() {
		return fmt.Errorf("%w: give at least one of -username, -avatar, -favorite", ErrUsage)
	}

	u, err := r.svc.Profile.Update(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Profile updated.")
	renderUser(r.out, *u)
	return nil
}
