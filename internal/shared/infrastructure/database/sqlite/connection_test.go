package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database"
)

func openTestConnection(t *testing.T) database.Connection {
	t.Helper()
	conn, err := NewConnection(context.Background(), database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "pawsit.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestNewConnection(t *testing.T) {
	conn := openTestConnection(t)

	assert.NoError(t, conn.Ping(context.Background()))
	assert.Equal(t, database.DriverSQLite, conn.Driver())
	assert.NotNil(t, conn.(*Connection).DB())
}

func TestNewConnection_ThroughFactory(t *testing.T) {
	conn, err := database.NewConnection(context.Background(), database.Config{
		SQLitePath: filepath.Join(t.TempDir(), "pawsit.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, database.DriverSQLite, conn.Driver())
}

func TestConnection_ExecAndQuery(t *testing.T) {
	ctx := context.Background()
	conn := openTestConnection(t)

	_, err := conn.Exec(ctx, `CREATE TABLE blocked (sitter_id TEXT, blocked_date TEXT)`)
	require.NoError(t, err)

	affected, err := conn.Exec(ctx, `INSERT INTO blocked (sitter_id, blocked_date) VALUES (?, ?), (?, ?)`,
		"s1", "2025-06-02", "s1", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	var count int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM blocked WHERE sitter_id = ?`, "s1").Scan(&count))
	assert.Equal(t, 2, count)

	rows, err := conn.Query(ctx, `SELECT blocked_date FROM blocked ORDER BY blocked_date`)
	require.NoError(t, err)
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		require.NoError(t, rows.Scan(&d))
		dates = append(dates, d)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, dates)
}

func TestConnection_NoRows(t *testing.T) {
	ctx := context.Background()
	conn := openTestConnection(t)

	_, err := conn.Exec(ctx, `CREATE TABLE profiles (user_id TEXT PRIMARY KEY)`)
	require.NoError(t, err)

	var id string
	err = conn.QueryRow(ctx, `SELECT user_id FROM profiles WHERE user_id = ?`, "missing").Scan(&id)
	assert.True(t, database.IsNoRows(err))
}
