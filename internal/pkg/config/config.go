package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

const (
	SessionBolt   = "bolt"
	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Client configures the teambuilder command.
type Client struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=warn"`

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:3000/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=10s"`
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=bolt"`
	Path    string `env:"SESSION_PATH"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=teambuilder"`
}

// Backend configures the development backend.
type Backend struct {
	Port      string        `env:"PORT,       default=3000"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	AdminEmail    string `env:"DEV_ADMIN_EMAIL,    default=admin@pokearena.dev"`
	AdminPassword string `env:"DEV_ADMIN_PASSWORD, default=admin123"`
}

// LoadClient reads the client configuration from the environment.
func LoadClient(ctx context.Context) (*Client, error) {
	return loadClient(ctx, envconfig.OsLookuper())
}

// LoadBackend reads the development backend configuration from the environment.
func LoadBackend(ctx context.Context) (*Backend, error) {
	return loadBackend(ctx, envconfig.OsLookuper())
}

func loadClient(ctx context.Context, l envconfig.Lookuper) (*Client, error) {
	var cfg Client
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func loadBackend(ctx context.Context, l envconfig.Lookuper) (*Backend, error) {
	var cfg Backend
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("config: TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return &cfg, nil
}

func (c *Client) validate() error {
	v := validation.New()
	if err := v.Var("SESSION_BACKEND", c.Session.Backend, "oneof=bolt redis memory"); err != nil {
		return err
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.API.Timeout)
	}
	return nil
}

// IsDevelopment reports whether logs should be human-readable.
func (c *Client) IsDevelopment() bool {
	return c.Env == "development"
}

// SessionPath resolves the bbolt file, defaulting to the user config dir.
func (c *Client) SessionPath() (string, error) {
	if c.Session.Path != "" {
		return c.Session.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}
	return filepath.Join(dir, "teambuilder", "session.db"), nil
}
