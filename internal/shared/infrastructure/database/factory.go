package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds database configuration.
type Config struct {
	// Driver selects the backend; DriverAuto or empty detects it from URL.
	Driver Driver
	// URL is the Postgres connection string.
	URL string
	// SQLitePath is the local database file. Defaults to ~/.pawsit/data.db.
	SQLitePath string
	// MaxConns caps the Postgres pool.
	MaxConns int
}

// Resolve returns the concrete backend for cfg.
func (c Config) Resolve() Driver {
	if c.Driver == "" || c.Driver == DriverAuto {
		return DetectDriver(c.URL)
	}
	return c.Driver
}

type connector func(ctx context.Context, cfg Config) (Connection, error)

var connectors = map[Driver]connector{}

// RegisterPostgresDriver registers the Postgres connector.
func RegisterPostgresDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	connectors[DriverPostgres] = fn
}

// RegisterSQLiteDriver registers the SQLite connector.
func RegisterSQLiteDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	connectors[DriverSQLite] = fn
}

// NewConnection opens a connection for the configured backend. The backend
// package must be imported for its connector to be registered.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Resolve()
	connect, ok := connectors[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	return connect(ctx, cfg)
}

// DefaultSQLitePath returns the default local database file.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".pawsit", "data.db")
}

// EnsureDirectory creates the parent directory of path.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
