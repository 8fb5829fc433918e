package cli

import (
	"context"
	"fmt"
	"time"
)

func runLogin(ctx context.Context, r *runner, args []string) error {
	fs := r.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	if err := r.svc.Session.Login(ctx, *email, *password); err != nil {
		return err
	}
	user, _ := r.svc.Session.User()
	fmt.Fprintf(r.out, "Welcome back, %s!\n", user.Username)
	return nil
}

type registerForm struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm"  validate:"eqfield=Password"`
}

func runRegister(ctx context.Context, r *runner, args []string) error {
	var form registerForm
	fs := r.flags("register")
	fs.StringVar(&form.Username, "username", "", "trainer name")
	fs.StringVar(&form.Email, "email", "", "account email")
	fs.StringVar(&form.Password, "password", "", "password, at least 6 characters")
	fs.StringVar(&form.Confirm, "confirm", "", "repeat the password")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if err := r.svc.Validator.Validate(form); err != nil {
		return err
	}

	if err := r.svc.Session.Register(ctx, form.Username, form.Email, form.Password); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Account created. Welcome, %s!\n", form.Username)
	return nil
}

func runLogout(ctx context.Context, r *runner, args []string) error {
	if err := r.parse(r.flags("logout"), args); err != nil {
		return err
	}
	_, wasIn := r.svc.Session.Current()
	r.svc.Session.Logout(ctx)
	if wasIn {
		fmt.Fprintln(r.out, "Logged out.")
	} else {
		fmt.Fprintln(r.out, "Not logged in.")
	}
	return nil
}

func runWhoami(_ context.Context, r *runner, args []string) error {
	if err := r.parse(r.flags("whoami"), args); err != nil {
		return err
	}
	sess, ok := r.svc.Session.Current()
	if !ok {
		fmt.Fprintln(r.out, "Not logged in.")
		return nil
	}

	u := sess.User
	fmt.Fprintf(r.out, "%s <%s>\n", u.Username, u.Email)
	role := u.Role.Name
	if role == "" {
		role = "user"
	}
	fmt.Fprintf(r.out, "role:     %s\n", role)
	if u.FavoriteTeam != nil {
		fmt.Fprintf(r.out, "favorite: %s\n", u.FavoriteTeam.Name)
	}
	fmt.Fprintf(r.out, "session:  valid until %s\n", sess.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}
