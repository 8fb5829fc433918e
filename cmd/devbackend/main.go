// Command devbackend serves the team-builder REST API from memory for local
// development and end-to-end tests of the client.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokearena/teambuilder/internal/api"
	"github.com/pokearena/teambuilder/internal/api/accounts"
	"github.com/pokearena/teambuilder/internal/infrastructure/memdb"
	"github.com/pokearena/teambuilder/internal/pkg/config"
	"github.com/pokearena/teambuilder/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadBackend(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.Env == "development",
		Component: "devbackend",
	})

	db := memdb.New()
	acc := accounts.NewService(db, cfg.JWTSecret, cfg.TokenTTL)
	if err := acc.EnsureAdmin(ctx, "admin", cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	e := api.NewRouter(api.Deps{
		DB:        db,
		Accounts:  acc,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("admin", cfg.AdminEmail).Msg("dev backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
