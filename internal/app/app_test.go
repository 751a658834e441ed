// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/apiclient/apiclienttest"
	"github.com/taibuivan/phoenix/internal/app"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/session"
	"github.com/taibuivan/phoenix/internal/storage"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newApp(t *testing.T, backend *apiclienttest.Backend, store storage.Store, clk clock.Clock) *app.App {
	t.Helper()

	cfg := &config.Config{
		APIBaseURL:  backend.Server.URL,
		Storage:     config.StorageMemory,
		GatewayPort: "0",
	}
	a, err := app.New(context.Background(), cfg, discardLogger, app.Options{Store: store, Clock: clk})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

/*
TestNew_RestoresSession verifies that a session persisted by one App is
visible to the next, and that its token reaches the backend.
*/
func TestNew_RestoresSession(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/bookmarks", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, []blog.Post{})
	})
	store := storage.NewMemory()
	ctx := context.Background()

	first := newApp(t, backend, store, nil)
	require.NoError(t, first.Session.Login(ctx, "jwt-1", blog.User{Email: "jane@example.com", Name: "Jane", Role: "USER"}))

	second := newApp(t, backend, store, nil)
	assert.True(t, second.Session.IsAuthenticated())

	_, err := second.Client.Bookmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-1", backend.Requests()[0].Authorization)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "not a url", Storage: config.StorageMemory}
	_, err := app.New(context.Background(), cfg, discardLogger, app.Options{Store: storage.NewMemory()})
	assert.Error(t, err)
}

/*
TestSearch verifies that settled queries reach the shared feed.
*/
func TestSearch(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/posts", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, pagination.Empty[blog.Post]())
	})
	clk := clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	a := newApp(t, backend, storage.NewMemory(), clk)

	var settled []string
	debouncer := a.Search(func(query string) { settled = append(settled, query) })
	debouncer.Input("go")
	clk.Advance(constants.SearchDebounce)

	assert.Equal(t, []string{"go"}, settled)
	assert.Equal(t, "go", a.Feed.Snapshot().Filter.Search)
}

/*
TestGateway verifies the composed gateway answers its probes.
*/
func TestGateway(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/tags", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, []string{"go"})
	})
	a := newApp(t, backend, storage.NewMemory(), nil)
	require.NoError(t, a.Appearance.Set(context.Background(), session.ThemeLight))

	handler := a.Gateway(context.Background()).Handler()

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
	assert.Equal(t, 1, backend.Count(http.MethodGet, "/api/tags"))
}
