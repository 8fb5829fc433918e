package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

// SessionService is the single owner of the client session. It keeps the
// in-memory copy and the persisted token/user keys in step.
type SessionService struct {
	auth     ports.AuthGateway
	storage  ports.SessionStorage
	validate *validation.Validator
	log      zerolog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	session *domain.Session
}

// SessionOption customises a SessionService.
type SessionOption func(*SessionService)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

// NewSessionService returns an empty, not yet restored, session.
func NewSessionService(auth ports.AuthGateway, storage ports.SessionStorage, validate *validation.Validator, log zerolog.Logger, opts ...SessionOption) *SessionService {
	s := &SessionService{
		auth:     auth,
		storage:  storage,
		validate: validate,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted session. A missing, expired or undecodable
// session leaves the store logged out and is not an error; only storage
// failures are returned.
func (s *SessionService) Restore(ctx context.Context) error {
	token, hasToken, err := s.storage.Get(ctx, ports.TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: read token: %w", err)
	}
	rawUser, hasUser, err := s.storage.Get(ctx, ports.UserKey)
	if err != nil {
		return fmt.Errorf("restore session: read user: %w", err)
	}

	if !hasToken && !hasUser {
		s.set(nil)
		return nil
	}
	if !hasToken || !hasUser {
		s.log.Debug().Bool("token", hasToken).Bool("user", hasUser).Msg("partial session discarded")
		s.Logout(ctx)
		return nil
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("stored token rejected")
		s.Logout(ctx)
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Debug().Err(err).Msg("stored user rejected")
		s.Logout(ctx)
		return nil
	}

	sess := domain.Session{Token: token, User: user, ExpiresAt: exp}
	if sess.ExpiredAt(s.now()) {
		s.log.Info().Time("expired_at", exp).Msg("stored session expired")
		s.Logout(ctx)
		return nil
	}

	s.set(&sess)
	s.log.Debug().Str("username", user.Username).Time("expires_at", exp).Msg("session restored")
	return nil
}

// Login authenticates against the backend and persists the new session.
// On failure the current session is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	in := ports.LoginInput{Email: email, Password: password}
	if err := s.validate.Validate(in); err != nil {
		return err
	}
	res, err := s.auth.Login(ctx, in)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.establish(ctx, res); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.log.Info().Str("username", res.User.Username).Msg("logged in")
	return nil
}

// Register creates an account and persists the returned session.
func (s *SessionService) Register(ctx context.Context, username, email, password string) error {
	in := ports.RegisterInput{Username: username, Email: email, Password: password}
	if err := s.validate.Validate(in); err != nil {
		return err
	}
	res, err := s.auth.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := s.establish(ctx, res); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.log.Info().Str("username", res.User.Username).Msg("registered")
	return nil
}

// Logout clears persisted and in-memory state. It never fails; storage
// errors are logged.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.storage.Delete(ctx, ports.TokenKey, ports.UserKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.set(nil)
}

// UpdateUser merges patch into the cached user, in memory and on disk.
func (s *SessionService) UpdateUser(ctx context.Context, patch domain.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoSession
	}
	updated := patch.Apply(s.session.User)
	raw, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("update user: encode: %w", err)
	}
	if err := s.storage.Set(ctx, ports.UserKey, string(raw)); err != nil {
		return fmt.Errorf("update user: persist: %w", err)
	}
	s.session.User = updated
	return nil
}

// Current returns a copy of the active session.
func (s *SessionService) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// User returns the cached user of the active session.
func (s *SessionService) User() (domain.User, bool) {
	sess, ok := s.Current()
	return sess.User, ok
}

// Token returns the bearer token, or "" when logged out.
func (s *SessionService) Token() string {
	sess, _ := s.Current()
	return sess.Token
}

// IsAdmin reports whether the active user has the admin role.
func (s *SessionService) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.Role.IsAdmin()
}

func (s *SessionService) establish(ctx context.Context, res *domain.AuthResult) error {
	if res == nil || res.Token == "" {
		return errors.New("backend returned no token")
	}
	exp, err := tokenExpiry(res.Token)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := s.storage.Set(ctx, ports.TokenKey, res.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.storage.Set(ctx, ports.UserKey, string(raw)); err != nil {
		if delErr := s.storage.Delete(ctx, ports.TokenKey, ports.UserKey); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to roll back persisted token")
		}
		// The previous session's keys are gone too, so memory follows.
		s.set(nil)
		return fmt.Errorf("persist user: %w", err)
	}

	s.set(&domain.Session{Token: res.Token, User: res.User, ExpiresAt: exp})
	return nil
}

func (s *SessionService) set(sess *domain.Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
}
