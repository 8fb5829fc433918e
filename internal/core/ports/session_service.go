package ports

import (
	"context"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// LoginInput is the payload of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the payload of POST /auth/register.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionService owns the authenticated session. All session mutation goes
// through these methods.
type SessionService interface {
	TokenSource
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, patch domain.UserPatch) error
	Current() (domain.Session, bool)
	User() (domain.User, bool)
}
