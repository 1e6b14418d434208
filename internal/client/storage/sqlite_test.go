package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflecta-app/reflecta/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteKV_SetAndGet(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k1", "hello"))

	v, err := kv.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestSQLiteKV_GetAbsent_ReturnsNotFound(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))

	_, err := kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "old"))
	require.NoError(t, kv.Set(ctx, "k", "new"))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestSQLiteKV_Remove_IsIdempotent(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Remove(ctx, "k"))
	require.NoError(t, kv.Remove(ctx, "k"))

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryKV_BehavesLikeSQLite(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "absent")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	require.NoError(t, kv.Set(ctx, "k", "v2"))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, kv.Remove(ctx, "k"))
	require.NoError(t, kv.Remove(ctx, "k"))
}
