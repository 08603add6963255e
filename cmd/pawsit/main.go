package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	"github.com/felixgeelhaar/pawsit/adapter/cli/availability"
	"github.com/felixgeelhaar/pawsit/adapter/cli/entitlement"
	"github.com/felixgeelhaar/pawsit/internal/app"
	"github.com/felixgeelhaar/pawsit/pkg/config"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
)

func main() {
	// Create context cancelled on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	logger := observability.LoggerFor("development", "", "", cli.Version)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = observability.LoggerFor(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat, cli.Version)
	cli.SetLogger(logger)

	// Try to initialize the full container
	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// Commands report that they need a database connection.
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = cli.NewApp(
			container.ComputeOccupancyHandler,
			container.CheckRangeHandler,
			container.GetCalendarHandler,
			container.EntitlementService,
		)
		cliApp.SetHealth(container.Health)
		cliApp.SetMigrator(container)
		cliApp.Metrics = container.Metrics
		cliApp.Logger = logger
		cliApp.APIAddr = cfg.APIAddr
	}

	// Set the CLI app
	cli.SetApp(cliApp)

	// Register commands
	cli.AddCommand(availability.Cmd)
	cli.AddCommand(entitlement.Cmd)

	// Execute CLI
	cli.Execute(ctx)
}
