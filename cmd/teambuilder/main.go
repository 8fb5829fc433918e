// Command teambuilder is the terminal client for the Pokémon team builder.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pokearena/teambuilder/internal/app"
	"github.com/pokearena/teambuilder/internal/cli"
	"github.com/pokearena/teambuilder/internal/pkg/config"
	"github.com/pokearena/teambuilder/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.IsDevelopment(),
		Component: "teambuilder",
	})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("close session storage")
		}
	}()

	svc := cli.Services{
		Session:   a.Session,
		Teams:     a.Teams,
		Battle:    a.Battle,
		Profile:   a.Profile,
		Pokedex:   a.Pokedex,
		Validator: a.Validator,
		Log:       log,
	}
	err = cli.Run(ctx, svc, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
