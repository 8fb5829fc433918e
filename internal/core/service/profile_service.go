package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

type profileService struct {
	gateway  ports.ProfileGateway
	session  ports.SessionService
	validate *validation.Validator
	log      zerolog.Logger
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(gateway ports.ProfileGateway, session ports.SessionService, validate *validation.Validator, log zerolog.Logger) ports.ProfileService {
	return &profileService{gateway: gateway, session: session, validate: validate, log: log}
}

func (s *profileService) Profile(ctx context.Context) (*domain.User, error) {
	if _, ok := s.session.User(); !ok {
		return nil, domain.ErrNoSession
	}
	u, err := s.gateway.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return u, nil
}

// Update saves the profile and folds the server's answer into the cached
// session user so the change is visible without restoring the session.
func (s *profileService) Update(ctx context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	if _, ok := s.session.User(); !ok {
		return nil, domain.ErrNoSession
	}
	if in.Username != nil {
		trimmed := strings.TrimSpace(*in.Username)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: username must not be blank", domain.ErrValidation)
		}
		in.Username = &trimmed
	}
	if in.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	updated, err := s.gateway.UpdateProfile(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := s.session.UpdateUser(ctx, domain.PatchFrom(*updated)); err != nil {
		return nil, fmt.Errorf("update profile: sync session: %w", err)
	}
	s.log.Info().Str("username", updated.Username).Msg("profile updated")
	return updated, nil
}
