package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role is the access level attached to a trainer account.
type Role struct {
	Name string `json:"name"`
}

// IsAdmin reports whether the role lifts the team capacity limit. The match
// is exact: "Admin" is not an admin role.
func (r Role) IsAdmin() bool {
	return r.Name == RoleAdmin
}

// User models the authenticated trainer as returned by the backend.
type User struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar,omitempty"`
	Role         Role   `json:"role"`
	FavoriteTeam *Team  `json:"favoriteTeam,omitempty"`
}

// UnmarshalJSON accepts favoriteTeam either populated as an object or as a
// bare team id, which the auth and profile-update endpoints send.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		FavoriteTeam json.RawMessage `json:"favoriteTeam"`
	}{plain: (*plain)(u)}
	u.FavoriteTeam = nil
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.FavoriteTeam)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return nil
	case raw[0] == '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return fmt.Errorf("favoriteTeam: %w", err)
		}
		if id != "" {
			u.FavoriteTeam = &Team{ID: id}
		}
		return nil
	default:
		var t Team
		if err := json.Unmarshal(raw, &t); err != nil {
			return fmt.Errorf("favoriteTeam: %w", err)
		}
		u.FavoriteTeam = &t
		return nil
	}
}

// UserPatch carries a partial user record. Nil fields are left untouched.
type UserPatch struct {
	Username     *string
	Email        *string
	Avatar       *string
	Role         *Role
	FavoriteTeam **Team
}

// Apply merges the patch into a copy of u and returns it.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.FavoriteTeam != nil {
		u.FavoriteTeam = *p.FavoriteTeam
	}
	return u
}

// PatchFrom builds a patch that overwrites every field the backend returned.
// Empty strings in the server record are treated as "not returned".
func PatchFrom(u User) UserPatch {
	var p UserPatch
	if u.Username != "" {
		p.Username = &u.Username
	}
	if u.Email != "" {
		p.Email = &u.Email
	}
	if u.Avatar != "" {
		p.Avatar = &u.Avatar
	}
	if u.Role.Name != "" {
		p.Role = &u.Role
	}
	fav := u.FavoriteTeam
	p.FavoriteTeam = &fav
	return p
}
