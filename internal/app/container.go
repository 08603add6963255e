package app

import (
	"context"
	"fmt"
	"log/slog"

	availabilityQueries "github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	availabilityServices "github.com/felixgeelhaar/pawsit/internal/availability/application/services"
	availabilityDomain "github.com/felixgeelhaar/pawsit/internal/availability/domain"
	availabilityCache "github.com/felixgeelhaar/pawsit/internal/availability/infrastructure/cache"
	availabilityPersistence "github.com/felixgeelhaar/pawsit/internal/availability/infrastructure/persistence"
	entitlementApp "github.com/felixgeelhaar/pawsit/internal/entitlement/application"
	entitlementDomain "github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	entitlementPersistence "github.com/felixgeelhaar/pawsit/internal/entitlement/infrastructure/persistence"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database/postgres"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/pawsit/pkg/config"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.InMemoryMetrics
	Health  *observability.HealthRegistry

	// Database
	DBConn   database.Connection
	DBDriver database.Driver

	// Redis, nil when the occupancy cache is disabled
	RedisClient *redis.Client

	// Repositories
	BlockedDateRepo availabilityDomain.BlockedDateRepository
	BookingRepo     availabilityDomain.BookingRepository
	RecordRepo      entitlementDomain.RecordRepository

	// Availability
	OccupancyReader         *availabilityServices.OccupancyReader
	ComputeOccupancyHandler *availabilityQueries.ComputeOccupancyHandler
	CheckRangeHandler       *availabilityQueries.CheckRangeHandler
	GetCalendarHandler      *availabilityQueries.GetCalendarHandler

	// Entitlement
	EntitlementService *entitlementApp.Service
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		Health:  observability.NewHealthRegistry(),
	}

	if err := c.connectDatabase(ctx); err != nil {
		return nil, err
	}
	if err := c.connectRedis(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.wire(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) connectDatabase(ctx context.Context) error {
	driver, err := database.ParseDriver(c.Config.DatabaseDriver)
	if err != nil {
		return err
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     driver,
		URL:        c.Config.DatabaseURL,
		SQLitePath: c.Config.SQLitePath,
		MaxConns:   c.Config.DatabaseMaxConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DBConn = conn
	c.DBDriver = conn.Driver()

	switch typed := conn.(type) {
	case *postgres.Connection:
		pool := typed.Pool()
		c.BlockedDateRepo = availabilityPersistence.NewPostgresBlockedDateRepository(pool)
		c.BookingRepo = availabilityPersistence.NewPostgresBookingRepository(pool)
		c.RecordRepo = entitlementPersistence.NewPostgresRecordRepository(pool)
		c.Logger.Info("connected to database", "driver", c.DBDriver.String())
	case *sqlite.Connection:
		// The local store is ours to manage, so its schema is applied on start.
		if err := migrations.Run(ctx, conn, database.DriverSQLite); err != nil {
			_ = conn.Close()
			return fmt.Errorf("failed to migrate SQLite database: %w", err)
		}
		db := typed.DB()
		c.BlockedDateRepo = availabilityPersistence.NewSQLiteBlockedDateRepository(db)
		c.BookingRepo = availabilityPersistence.NewSQLiteBookingRepository(db)
		c.RecordRepo = entitlementPersistence.NewSQLiteRecordRepository(db)
		c.Logger.Info("connected to database", "driver", c.DBDriver.String(), "path", c.Config.SQLitePath)
	default:
		_ = conn.Close()
		return fmt.Errorf("unexpected connection type %T", conn)
	}

	c.Health.Register("database", observability.DatabaseHealthChecker(conn.Ping))
	return nil
}

// connectRedis attaches the occupancy cache. Redis is optional in
// development; elsewhere a configured but unreachable Redis is an error.
func (c *Container) connectRedis(ctx context.Context) error {
	if c.Config.RedisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(c.Config.RedisURL)
	if err != nil {
		if !c.Config.IsDevelopment() {
			return fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		c.Logger.Warn("invalid Redis URL, occupancy cache disabled", "error", err)
		return nil
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if !c.Config.IsDevelopment() {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.Logger.Warn("Redis not available, occupancy cache disabled", "error", err)
		return nil
	}

	c.RedisClient = client
	c.Health.Register("redis", observability.RedisHealthChecker(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}))
	c.Logger.Info("connected to Redis")
	return nil
}

func (c *Container) wire() error {
	loc, err := c.Config.Location()
	if err != nil {
		return fmt.Errorf("invalid calendar timezone: %w", err)
	}

	var cache availabilityServices.OccupancyCache
	if c.RedisClient != nil {
		cache = availabilityCache.NewRedisOccupancyCache(c.RedisClient, c.Config.OccupancyCacheTTL)
	}

	c.OccupancyReader = availabilityServices.NewOccupancyReader(
		c.BlockedDateRepo,
		c.BookingRepo,
		cache,
		availabilityServices.ReaderConfig{
			BreakerEnabled:   c.Config.StoreBreakerEnabled,
			FailureThreshold: c.Config.StoreBreakerFailures,
			OpenTimeout:      c.Config.StoreBreakerTimeout,
		},
		c.Metrics,
		c.Logger,
	)

	policy := availabilityQueries.DefaultWindowPolicy()
	policy.Days = c.Config.AvailabilityWindowDays
	policy.Location = loc

	c.ComputeOccupancyHandler = availabilityQueries.NewComputeOccupancyHandler(c.OccupancyReader, policy)
	c.CheckRangeHandler = availabilityQueries.NewCheckRangeHandler(c.OccupancyReader, c.Metrics, c.Logger)
	c.GetCalendarHandler = availabilityQueries.NewGetCalendarHandler(c.OccupancyReader, policy)

	c.EntitlementService = entitlementApp.NewService(c.RecordRepo, c.Metrics, c.Logger)
	return nil
}

// Migrate applies the schema for the connected backend.
func (c *Container) Migrate(ctx context.Context) error {
	if c.DBConn == nil {
		return fmt.Errorf("no database connection")
	}
	c.Logger.Info("running migrations", "driver", c.DBDriver.String())
	return migrations.Run(ctx, c.DBConn, c.DBDriver)
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("error closing Redis connection", "error", err)
		} else {
			c.Logger.Info("Redis connection closed")
		}
	}

	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			c.Logger.Warn("error closing database connection", "error", err)
		} else {
			c.Logger.Info("database connection closed", "driver", c.DBDriver.String())
		}
	}
}
