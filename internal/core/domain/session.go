package domain

import "time"

// Session is the authenticated state of the client.
type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is no longer valid at now.
// A token whose expiry equals now is already expired.
func (s Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AuthResult is the backend response to login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
