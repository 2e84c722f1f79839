package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), NamespaceStandard)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "theme_mode", []byte("dark")))

	v, err := r.Get(ctx, "theme_mode")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), v)
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), NamespaceStandard)

	_, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSet_EmptyValueIsNotMissing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), NamespaceStandard)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "empty", nil))
	v, err := r.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), NamespaceStandard)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestNamespaces_AreIsolated(t *testing.T) {
	db := setupDB(t)
	std := NewSQLiteRepository(db, NamespaceStandard)
	sec := NewSQLiteRepository(db, NamespaceSecure)
	ctx := context.Background()

	require.NoError(t, std.Set(ctx, "shared", []byte("std")))
	require.NoError(t, sec.Set(ctx, "shared", []byte("sec")))
	require.NoError(t, sec.Set(ctx, "auth_token", []byte("t")))

	v, err := std.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("std"), v)

	_, err = std.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, sec.Clear(ctx))

	keys, err := sec.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = std.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, keys)
}

func TestDelete_ManyKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), NamespaceSecure)
	ctx := context.Background()

	for _, k := range []string{"auth_token", "refresh_token", "user_data", "biometric_enabled"} {
		require.NoError(t, r.Set(ctx, k, []byte("x")))
	}

	require.NoError(t, r.Delete(ctx, "auth_token", "user_data", "never_written"))
	require.NoError(t, r.Delete(ctx))

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"biometric_enabled", "refresh_token"}, keys)
}

func TestClosedDB_Errors(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, NamespaceStandard)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Error(t, r.Set(ctx, "k", []byte("v")))
	assert.Error(t, r.Delete(ctx, "k"))
	assert.Error(t, r.Clear(ctx))
	_, err = r.Keys(ctx)
	assert.Error(t, err)
}
