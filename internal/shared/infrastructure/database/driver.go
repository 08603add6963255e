package database

import (
	"fmt"
	"strings"
)

// Driver names a store backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	// DriverAuto picks the backend from the connection URL.
	DriverAuto Driver = "auto"
)

func (d Driver) String() string {
	return string(d)
}

// IsValid reports whether d names a concrete backend.
func (d Driver) IsValid() bool {
	return d == DriverPostgres || d == DriverSQLite
}

// ParseDriver parses a DATABASE_DRIVER value. Empty means auto.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(s))); d {
	case "", DriverAuto:
		return DriverAuto, nil
	case DriverPostgres, "postgresql":
		return DriverPostgres, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unknown database driver %q", s)
	}
}

// DetectDriver infers the backend from a connection URL.
// An empty URL selects the local SQLite store.
func DetectDriver(url string) Driver {
	switch {
	case url == "":
		return DriverSQLite
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return DriverSQLite
	}
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(url, ext) {
			return DriverSQLite
		}
	}
	return DriverPostgres
}
