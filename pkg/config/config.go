package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/convert"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Database. An empty DatabaseURL selects the local SQLite store.
	DatabaseURL      string
	DatabaseDriver   string
	SQLitePath       string
	DatabaseMaxConns int

	// Redis. Empty disables the occupancy cache.
	RedisURL          string
	OccupancyCacheTTL time.Duration

	// Availability
	AvailabilityWindowDays int
	CalendarTimezone       string

	// Store circuit breaker
	StoreBreakerEnabled  bool
	StoreBreakerFailures uint32
	StoreBreakerTimeout  time.Duration

	// HTTP API
	APIAddr string
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DatabaseDriver:   getEnv("DATABASE_DRIVER", "auto"),
		SQLitePath:       getEnv("SQLITE_PATH", ""),
		DatabaseMaxConns: getIntEnv("DATABASE_MAX_CONNS", 10),

		RedisURL:          getEnv("REDIS_URL", ""),
		OccupancyCacheTTL: getDurationEnv("OCCUPANCY_CACHE_TTL", 30*time.Second),

		AvailabilityWindowDays: getIntEnv("AVAILABILITY_WINDOW_DAYS", 90),
		CalendarTimezone:       getEnv("CALENDAR_TIMEZONE", "UTC"),

		StoreBreakerEnabled:  getBoolEnv("STORE_BREAKER_ENABLED", true),
		StoreBreakerFailures: convert.IntToUint32Clamped(getIntEnv("STORE_BREAKER_FAILURES", 5)),
		StoreBreakerTimeout:  getDurationEnv("STORE_BREAKER_TIMEOUT", 30*time.Second),

		APIAddr: getEnv("API_ADDR", "0.0.0.0:8080"),
	}

	if cfg.AvailabilityWindowDays <= 0 {
		return nil, fmt.Errorf("AVAILABILITY_WINDOW_DAYS must be positive, got %d", cfg.AvailabilityWindowDays)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Location returns the zone in which "today" is determined.
func (c *Config) Location() (*time.Location, error) {
	if c.CalendarTimezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.CalendarTimezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
