// Package accounts registers trainers and issues the JWTs the development
// backend accepts.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

// Store persists accounts.
type Store interface {
	CreateUser(ctx context.Context, username, email, passwordHash, role string) (domain.User, error)
	Credentials(ctx context.Context, email string) (domain.User, string, error)
}

// Claims is the JWT payload issued on login and register.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service implements registration and login.
type Service struct {
	store     Store
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(store Store, jwtSecret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{store: store, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL, now: time.Now}
}

// Register creates a regular trainer account and signs it in.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error) {
	user, err := s.create(ctx, username, email, password, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// EnsureAdmin creates the admin account unless the email is already taken.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) error {
	_, err := s.create(ctx, username, email, password, domain.RoleAdmin)
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// Login checks the password of the account registered under email. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, hash, err := s.store.Credentials(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

// Parse validates a bearer token issued by this service.
func (s *Service) Parse(token string) (*Claims, error) {
	return ParseToken(token, string(s.jwtSecret))
}

// ParseToken validates an HS256 token signed with secret.
func ParseToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *Service) create(ctx context.Context, username, email, password, role string) (domain.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	return s.store.CreateUser(ctx, username, email, string(hash), role)
}

func (s *Service) issue(user domain.User) (*domain.AuthResult, error) {
	now := s.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &domain.AuthResult{Token: signed, User: user}, nil
}
