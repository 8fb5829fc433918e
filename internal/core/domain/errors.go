package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrNoSession = errors.New("no active session")

	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamLimitReached = errors.New("team limit reached")
	ErrTeamFull         = errors.New("team roster is full")
	ErrEmptyRoster      = errors.New("team has no pokemon")
)
