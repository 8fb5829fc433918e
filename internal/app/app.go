// Package app wires the client: configuration, session storage, the backend
// gateway and the core services.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/ports"
	"github.com/pokearena/teambuilder/internal/core/service"
	"github.com/pokearena/teambuilder/internal/infrastructure/gateway"
	"github.com/pokearena/teambuilder/internal/infrastructure/storage/bolt"
	"github.com/pokearena/teambuilder/internal/infrastructure/storage/memory"
	"github.com/pokearena/teambuilder/internal/infrastructure/storage/redis"
	"github.com/pokearena/teambuilder/internal/pkg/config"
	"github.com/pokearena/teambuilder/internal/pkg/validation"
)

// App is the assembled client.
type App struct {
	Session *service.SessionService
	Teams   ports.TeamService
	Battle  ports.BattleService
	Profile ports.ProfileService
	Pokedex *service.PokedexBrowser

	Validator *validation.Validator
	Log       zerolog.Logger

	closers []func() error
}

// New builds the client for cfg. The session is not restored yet.
func New(ctx context.Context, cfg *config.Client, log zerolog.Logger) (*App, error) {
	a := &App{Validator: validation.New(), Log: log}

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var session *service.SessionService
	gw, err := gateway.New(cfg.API.BaseURL, cfg.API.Timeout,
		gateway.TokenFunc(func() string { return session.Token() }),
		gateway.WithLogger(log.With().Str("component", "gateway").Logger()),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	session = service.NewSessionService(gw, storage, a.Validator, log.With().Str("component", "session").Logger())
	a.Session = session
	a.Teams = service.NewTeamService(gw, session, log.With().Str("component", "teams").Logger())
	a.Battle = service.NewBattleService(gw, session)
	a.Profile = service.NewProfileService(gw, session, a.Validator, log.With().Str("component", "profile").Logger())
	a.Pokedex = service.NewPokedexBrowser(gw)
	return a, nil
}

// Close releases the session storage.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openStorage(ctx context.Context, cfg *config.Client) (ports.SessionStorage, error) {
	switch cfg.Session.Backend {
	case config.SessionMemory:
		return memory.New(), nil

	case config.SessionRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, fmt.Errorf("session storage: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.Log.Debug().Str("addr", cfg.Redis.Addr).Msg("session storage: redis")
		return redis.NewSessionStore(client, cfg.Redis.Prefix), nil

	default:
		path, err := cfg.SessionPath()
		if err != nil {
			return nil, fmt.Errorf("session storage: %w", err)
		}
		store, err := bolt.Open(path)
		if err != nil {
			return nil, fmt.Errorf("session storage: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		a.Log.Debug().Str("path", path).Msg("session storage: bolt")
		return store, nil
	}
}
