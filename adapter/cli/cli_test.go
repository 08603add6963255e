package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	calls int
	err   error
}

func (m *fakeMigrator) Migrate(ctx context.Context) error {
	m.calls++
	return m.err
}

func TestVersionCmd(t *testing.T) {
	var output strings.Builder
	versionCmd.SetOut(&output)

	versionCmd.Run(versionCmd, []string{})
	assert.Contains(t, output.String(), "pawsit dev")
	assert.Contains(t, output.String(), "commit: none")
}

func TestHealthCmd_NoApp(t *testing.T) {
	SetApp(nil)

	var output strings.Builder
	healthCmd.SetContext(context.Background())
	healthCmd.SetOut(&output)

	err := healthCmd.RunE(healthCmd, []string{})
	assert.NoError(t, err)
	assert.Contains(t, output.String(), "requires database connection")
}

func TestHealthCmd_ReportsChecks(t *testing.T) {
	health := observability.NewHealthRegistry()
	health.Register("database", observability.DatabaseHealthChecker(func(ctx context.Context) error { return nil }))
	SetApp(&App{Health: health})
	defer SetApp(nil)

	var output strings.Builder
	healthCmd.SetContext(context.Background())
	healthCmd.SetOut(&output)

	err := healthCmd.RunE(healthCmd, []string{})
	require.NoError(t, err)
	assert.Contains(t, output.String(), "status: healthy")
	assert.Contains(t, output.String(), "database")
}

func TestHealthCmd_Unhealthy(t *testing.T) {
	health := observability.NewHealthRegistry()
	health.Register("database", observability.DatabaseHealthChecker(func(ctx context.Context) error {
		return errors.New("connection refused")
	}))
	SetApp(&App{Health: health})
	defer SetApp(nil)

	var output strings.Builder
	healthCmd.SetContext(context.Background())
	healthCmd.SetOut(&output)

	err := healthCmd.RunE(healthCmd, []string{})
	assert.Error(t, err)
	assert.Contains(t, output.String(), "status: unhealthy")
}

func TestMigrateCmd(t *testing.T) {
	t.Run("no app", func(t *testing.T) {
		SetApp(nil)
		migrateCmd.SetContext(context.Background())

		err := migrateCmd.RunE(migrateCmd, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires database connection")
	})

	t.Run("applies schema", func(t *testing.T) {
		migrator := &fakeMigrator{}
		SetApp(&App{Migrator: migrator})
		defer SetApp(nil)

		var output strings.Builder
		migrateCmd.SetContext(context.Background())
		migrateCmd.SetOut(&output)

		require.NoError(t, migrateCmd.RunE(migrateCmd, []string{}))
		assert.Equal(t, 1, migrator.calls)
		assert.Contains(t, output.String(), "up to date")
	})

	t.Run("reports failure", func(t *testing.T) {
		SetApp(&App{Migrator: &fakeMigrator{err: errors.New("permission denied")}})
		defer SetApp(nil)

		migrateCmd.SetContext(context.Background())
		err := migrateCmd.RunE(migrateCmd, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})
}

func TestServeCmd_NoApp(t *testing.T) {
	SetApp(nil)
	serveCmd.SetContext(context.Background())

	err := serveCmd.RunE(serveCmd, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires database connection")
}

func TestNewAPIServer_ServesHealth(t *testing.T) {
	server := NewAPIServer(&App{Health: observability.NewHealthRegistry()}, "127.0.0.1:0")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewAPIServer_ServesMetrics(t *testing.T) {
	metrics := observability.NewInMemoryMetrics()
	metrics.Counter(observability.MetricEntitlementChecks, 1)
	server := NewAPIServer(&App{Metrics: metrics}, "127.0.0.1:0")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), observability.MetricEntitlementChecks)
}

func TestRootCmd_LogsCommandLifecycle(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	versionCmd.SetContext(context.Background())
	versionCmd.SetOut(&strings.Builder{})

	rootCmd.PersistentPreRun(versionCmd, nil)
	versionCmd.Run(versionCmd, nil)
	rootCmd.PersistentPostRun(versionCmd, nil)

	output := buf.String()
	assert.Contains(t, output, "command start")
	assert.Contains(t, output, "operation completed")
	assert.Contains(t, output, "operation=\"pawsit version\"")
	assert.Contains(t, output, observability.CorrelationIDKey+"=")
	assert.Contains(t, output, observability.DurationKey+"=")
}
