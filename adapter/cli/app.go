package cli

import (
	"context"
	"log/slog"

	availabilityQueries "github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	entitlementApp "github.com/felixgeelhaar/pawsit/internal/entitlement/application"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
)

// Migrator applies the database schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// App holds the CLI application dependencies.
type App struct {
	// Availability Query Handlers
	ComputeOccupancyHandler *availabilityQueries.ComputeOccupancyHandler
	CheckRangeHandler       *availabilityQueries.CheckRangeHandler
	GetCalendarHandler      *availabilityQueries.GetCalendarHandler

	// Entitlement
	EntitlementService *entitlementApp.Service

	// Operations
	Health   *observability.HealthRegistry
	Metrics  *observability.InMemoryMetrics
	Migrator Migrator
	Logger   *slog.Logger

	// HTTP API
	APIAddr string
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	computeOccupancyHandler *availabilityQueries.ComputeOccupancyHandler,
	checkRangeHandler *availabilityQueries.CheckRangeHandler,
	getCalendarHandler *availabilityQueries.GetCalendarHandler,
	entitlementService *entitlementApp.Service,
) *App {
	return &App{
		ComputeOccupancyHandler: computeOccupancyHandler,
		CheckRangeHandler:       checkRangeHandler,
		GetCalendarHandler:      getCalendarHandler,
		EntitlementService:      entitlementService,
	}
}

// SetHealth updates the health registry.
func (a *App) SetHealth(health *observability.HealthRegistry) {
	a.Health = health
}

// SetMigrator updates the schema migrator.
func (a *App) SetMigrator(m Migrator) {
	a.Migrator = m
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
