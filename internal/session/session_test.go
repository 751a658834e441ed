// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/sec"
	"github.com/taibuivan/phoenix/internal/session"
	"github.com/taibuivan/phoenix/internal/storage"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

/*
TestLoginReload verifies that a login survives a reload of the store.
*/
func TestLoginReload(t *testing.T) {
	ctx := context.Background()
	users := []blog.User{
		{Email: "jane@example.com", Name: "Jane", Role: constants.RoleUser},
		{Email: "root@example.com", Name: "Root", Role: constants.RoleAdmin},
		{Email: "ünï@example.com", Name: "Ünïcode 名前", Role: constants.RoleUser},
	}

	for _, user := range users {
		t.Run(user.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "phoenix.db")
			store, err := storage.OpenSQLite(ctx, path, nil)
			require.NoError(t, err)

			s := session.Load(ctx, store, discardLogger)
			assert.False(t, s.IsAuthenticated())
			require.NoError(t, s.Login(ctx, "tok-"+user.Name, user))
			require.NoError(t, store.Close())

			reopened, err := storage.OpenSQLite(ctx, path, nil)
			require.NoError(t, err)
			t.Cleanup(func() { _ = reopened.Close() })

			restored := session.Load(ctx, reopened, discardLogger)
			assert.True(t, restored.IsAuthenticated())
			assert.Equal(t, "tok-"+user.Name, restored.Token())
			got, ok := restored.User()
			require.True(t, ok)
			assert.Equal(t, user, got)
			assert.Equal(t, user.IsAdmin(), restored.IsAdmin())
		})
	}
}

/*
TestLoad_CorruptUser verifies that an unparsable user purges the whole session.
*/
func TestLoad_CorruptUser(t *testing.T) {
	tests := []struct {
		name string
		user string
	}{
		{"not_json", "{not json"},
		{"wrong_shape", `["a","b"]`},
		{"json_null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemory()
			require.NoError(t, store.Set(ctx, constants.StorageKeyToken, "tok"))
			require.NoError(t, store.Set(ctx, constants.StorageKeyUser, tt.user))

			s := session.Load(ctx, store, discardLogger)

			assert.False(t, s.IsAuthenticated())
			assert.Empty(t, s.Token())
			assert.Empty(t, store.Snapshot())
		})
	}
}

func TestLoad_HalfSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, constants.StorageKeyToken, "tok"))

	s := session.Load(ctx, store, discardLogger)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, store.Snapshot())
}

/*
TestLoad_SealedWithOtherSecret verifies that values sealed under a different
passphrase are treated as corrupt.
*/
func TestLoad_SealedWithOtherSecret(t *testing.T) {
	ctx := context.Background()
	raw := storage.NewMemory()

	first, err := sec.NewSealer("first secret")
	require.NoError(t, err)
	s := session.Load(ctx, storage.NewSealed(raw, first), discardLogger)
	require.NoError(t, s.Login(ctx, "tok", blog.User{Email: "a@b.c", Name: "A", Role: constants.RoleUser}))
	assert.Len(t, raw.Snapshot(), 2)

	second, err := sec.NewSealer("second secret")
	require.NoError(t, err)
	restored := session.Load(ctx, storage.NewSealed(raw, second), discardLogger)

	assert.False(t, restored.IsAuthenticated())
	assert.Empty(t, raw.Snapshot())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s := session.Load(ctx, store, discardLogger)

	require.NoError(t, s.Login(ctx, "tok", blog.User{Email: "a@b.c", Name: "A", Role: constants.RoleAdmin}))
	assert.True(t, s.IsAdmin())

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Empty(t, store.Snapshot())
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@b.c",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	s := session.Load(ctx, storage.NewMemory(), discardLogger)
	_, ok := s.TokenExpiry()
	assert.False(t, ok)

	require.NoError(t, s.Login(ctx, token, blog.User{Email: "a@b.c"}))
	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, expiry.Equal(got))

	// Opaque tokens are accepted; they simply carry no expiry.
	require.NoError(t, s.Login(ctx, "opaque", blog.User{Email: "a@b.c"}))
	assert.True(t, s.IsAuthenticated())
	_, ok = s.TokenExpiry()
	assert.False(t, ok)
}

/*
TestAppearance covers the fallback and the persisted toggle.
*/
func TestAppearance(t *testing.T) {
	ctx := context.Background()

	t.Run("system_default", func(t *testing.T) {
		assert.Equal(t, session.ThemeLight, session.LoadAppearance(ctx, storage.NewMemory(), false, discardLogger).Current())
		assert.Equal(t, session.ThemeDark, session.LoadAppearance(ctx, storage.NewMemory(), true, discardLogger).Current())
	})

	t.Run("unknown_value_ignored", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Set(ctx, constants.StorageKeyTheme, "sepia"))

		a := session.LoadAppearance(ctx, store, true, discardLogger)
		assert.Equal(t, session.ThemeDark, a.Current())
		assert.False(t, a.Explicit())
	})

	t.Run("toggle_persists", func(t *testing.T) {
		store := storage.NewMemory()
		a := session.LoadAppearance(ctx, store, false, discardLogger)

		theme, err := a.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.ThemeDark, theme)

		reloaded := session.LoadAppearance(ctx, store, false, discardLogger)
		assert.Equal(t, session.ThemeDark, reloaded.Current())
		assert.True(t, reloaded.Explicit())
		assert.Equal(t, "dark", store.Snapshot()[constants.StorageKeyTheme])
	})

	t.Run("set_rejects_unknown", func(t *testing.T) {
		a := session.LoadAppearance(ctx, storage.NewMemory(), false, discardLogger)
		assert.Error(t, a.Set(ctx, session.Theme("blue")))
	})
}
