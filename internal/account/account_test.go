// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/account"
	"github.com/taibuivan/phoenix/internal/apiclient/apiclienttest"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/route"
	"github.com/taibuivan/phoenix/internal/session"
	"github.com/taibuivan/phoenix/internal/storage"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	backend *apiclienttest.Backend
	store   *storage.Memory
	session *session.Store
	history *route.History
	clock   *clock.Manual
	service *account.Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		backend: apiclienttest.New(t),
		store:   storage.NewMemory(),
		history: route.NewHistory(discardLogger),
		clock:   clock.NewManual(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.session = session.Load(context.Background(), f.store, discardLogger)
	f.service = account.NewService(f.backend.Client(t, f.session), f.session, f.history, f.clock, discardLogger)
	return f
}

/*
TestLogin covers a successful login, a rejected one, and local validation.
*/
func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.backend.Router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req blog.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			apiclienttest.Fail(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		apiclienttest.Data(w, http.StatusOK, blog.AuthResult{Token: "jwt", Email: req.Email, Name: "Jane", Role: "USER"})
	})
	ctx := context.Background()

	t.Run("missing_fields", func(t *testing.T) {
		_, err := f.service.Login(ctx, blog.LoginRequest{Email: "jane@example.com"})
		assert.Error(t, err)
		assert.Empty(t, f.backend.Requests())
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := f.service.Login(ctx, blog.LoginRequest{Email: "jane@example.com", Password: "nope"})
		assert.Equal(t, "Invalid email or password", apperr.MessageOr(err, ""))
		assert.False(t, f.session.IsAuthenticated())
	})

	t.Run("accepted", func(t *testing.T) {
		user, err := f.service.Login(ctx, blog.LoginRequest{Email: "jane@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
		assert.True(t, f.session.IsAuthenticated())
		assert.Equal(t, "jwt", f.session.Token())
		assert.Equal(t, route.Home, f.history.Current())
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, f.service.Logout(ctx))
		assert.False(t, f.session.IsAuthenticated())
		assert.Empty(t, f.store.Snapshot())
	})
}

func TestRegister_NetworkFallback(t *testing.T) {
	f := newFixture(t)
	f.backend.Server.Close()

	_, err := f.service.Register(context.Background(), blog.RegisterRequest{Name: "J", Email: "j@example.com", Password: "secret1"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NETWORK_ERROR", ae.Code)
	assert.Equal(t, "Registration failed", ae.Message)
}

/*
TestResetPassword verifies the form rules and the delayed redirect.
*/
func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	f.backend.Router.Post("/api/auth/reset-password", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, "Password reset")
	})
	ctx := context.Background()

	err := f.service.ResetPassword(ctx, blog.ResetPasswordForm{Token: "t", NewPassword: "abcdef", ConfirmPassword: "abcdeg"})
	assert.Equal(t, "Passwords do not match", apperr.MessageOr(err, ""))
	assert.Empty(t, f.backend.Requests())

	require.NoError(t, f.service.ResetPassword(ctx, blog.ResetPasswordForm{Token: "t", NewPassword: "abcdef", ConfirmPassword: "abcdef"}))
	assert.JSONEq(t, `{"token":"t","newPassword":"abcdef"}`, string(f.backend.Requests()[0].Body))

	f.clock.Advance(2 * time.Second)
	assert.Equal(t, route.Home, f.history.Current())
	f.clock.Advance(time.Second)
	assert.Equal(t, route.Login, f.history.Current())
}

func TestForgotPassword(t *testing.T) {
	f := newFixture(t)
	f.backend.Router.Post("/api/auth/forgot-password", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Fail(w, http.StatusNotFound, "No account with that email")
	})
	ctx := context.Background()

	assert.Error(t, f.service.ForgotPassword(ctx, "not-an-email"))
	assert.Empty(t, f.backend.Requests())

	err := f.service.ForgotPassword(ctx, "ghost@example.com")
	assert.Equal(t, "No account with that email", apperr.MessageOr(err, ""))
	assert.JSONEq(t, `{"email":"ghost@example.com"}`, string(f.backend.Requests()[0].Body))
}
