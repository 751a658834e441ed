// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/sec"
	"github.com/taibuivan/phoenix/internal/storage"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

/*
exerciseStore runs the behaviour every backend must share.
*/
func exerciseStore(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, "token", `"abc"`))
	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, value)

	// Last write wins.
	require.NoError(t, store.Set(ctx, "token", `"def"`))
	value, err = store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, `"def"`, value)

	require.NoError(t, store.Delete(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, "token"))
}

func TestMemory(t *testing.T) {
	exerciseStore(t, storage.NewMemory())
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "phoenix.db")
	store, err := storage.OpenSQLite(context.Background(), path, discardLogger)
	require.NoError(t, err)

	exerciseStore(t, store)

	// Values survive reopening the file.
	require.NoError(t, store.Set(context.Background(), "theme-preference", `"dark"`))
	require.NoError(t, store.Close())

	reopened, err := storage.OpenSQLite(context.Background(), path, discardLogger)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(context.Background(), "theme-preference")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, value)
}

/*
TestSQLite_InMemoryKeepsJournal verifies that an in-memory database, which
cannot switch to WAL, still opens and logs the refused pragma.
*/
func TestSQLite_InMemoryKeepsJournal(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store, err := storage.OpenSQLite(context.Background(), ":memory:", logger)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
	assert.Contains(t, logs.String(), `"msg":"sqlite_pragma_ignored"`)
	assert.Contains(t, logs.String(), `"mode":"memory"`)
	assert.NotContains(t, logs.String(), "sqlite_pragma_failed")
}

func TestSealed(t *testing.T) {
	sealer, err := sec.NewSealer("storage passphrase")
	require.NoError(t, err)

	inner := storage.NewMemory()
	store := storage.NewSealed(inner, sealer)
	exerciseStore(t, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user", `{"email":"a@b.c"}`))
	assert.NotContains(t, inner.Snapshot()["user"], "a@b.c")

	// A value written without sealing is corrupt, not fatal.
	require.NoError(t, inner.Set(ctx, "user", `{"email":"a@b.c"}`))
	_, err = store.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.True(t, storage.IsAbsent(err))
}

/*
TestJSONHelpers verifies encoding and the corrupt-value signal.
*/
func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	type user struct {
		Email string `json:"email"`
	}

	require.NoError(t, storage.SetJSON(ctx, store, "user", user{Email: "a@b.c"}))

	var got user
	require.NoError(t, storage.GetJSON(ctx, store, "user", &got))
	assert.Equal(t, "a@b.c", got.Email)

	require.NoError(t, store.Set(ctx, "user", "{not json"))
	err := storage.GetJSON(ctx, store, "user", &got)
	assert.ErrorIs(t, err, storage.ErrCorrupt)

	err = storage.GetJSON(ctx, store, "missing", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.True(t, storage.IsAbsent(err))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{Storage: config.StorageMemory}},
		{"sqlite", config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "p.db")}},
		{"sealed_memory", config.Config{Storage: config.StorageMemory, StorageSecret: "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.Open(context.Background(), &tt.cfg, discardLogger)
			require.NoError(t, err)
			defer store.Close()

			exerciseStore(t, store)
		})
	}

	_, err := storage.Open(context.Background(), &config.Config{Storage: "floppy"}, discardLogger)
	assert.Error(t, err)
}

/*
TestRedis runs against a real server when PHOENIX_TEST_REDIS_URL is set.
*/
func TestRedis(t *testing.T) {
	url := os.Getenv("PHOENIX_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PHOENIX_TEST_REDIS_URL not set")
	}

	store, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageRedis, RedisURL: url}, discardLogger)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

/*
TestPostgres runs against a real server when PHOENIX_TEST_DATABASE_URL is set.
*/
func TestPostgres(t *testing.T) {
	dsn := os.Getenv("PHOENIX_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PHOENIX_TEST_DATABASE_URL not set")
	}

	store, err := storage.Open(context.Background(), &config.Config{Storage: config.StoragePostgres, DatabaseURL: dsn}, discardLogger)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}
