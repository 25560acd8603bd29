package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/edugame/internal/db"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := db.Open(db.MemoryPath)
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()

	var versions int
	require.NoError(t, d.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&versions))
	assert.GreaterOrEqual(t, versions, 1)

	var entries int
	require.NoError(t, d.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_entries`).Scan(&entries))
	assert.Equal(t, 0, entries)
}

func TestOpen_MemoryDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()

	a, err := db.Open(db.MemoryPath)
	require.NoError(t, err)
	defer a.Close()
	b, err := db.Open(db.MemoryPath)
	require.NoError(t, err)
	defer b.Close()

	_, err = a.ExecContext(ctx, `INSERT INTO ledger_entries (id, username, kind, delta, balance) VALUES ('x', 'ana', 'scrape', 0, 100)`)
	require.NoError(t, err)

	var n int
	require.NoError(t, b.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_entries`).Scan(&n))
	assert.Equal(t, 0, n)
}
