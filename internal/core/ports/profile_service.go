package ports

import (
	"context"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// ProfileUpdateInput is the payload of PUT /users/profile. Nil fields are
// omitted; an empty FavoriteTeam clears the favorite.
type ProfileUpdateInput struct {
	Username     *string `json:"username,omitempty"     validate:"omitempty,min=1"`
	Avatar       *string `json:"avatar,omitempty"       validate:"omitempty,url"`
	FavoriteTeam *string `json:"favoriteTeam,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (in ProfileUpdateInput) IsEmpty() bool {
	return in.Username == nil && in.Avatar == nil && in.FavoriteTeam == nil
}

// ProfileService reads and edits the trainer profile and keeps the session's
// cached user in sync.
type ProfileService interface {
	Profile(ctx context.Context) (*domain.User, error)
	Update(ctx context.Context, in ProfileUpdateInput) (*domain.User, error)
}
