// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/apiclient/apiclienttest"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/paging"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/search"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// recorder collects settled queries.
type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) settle(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func newClock() *clock.Manual {
	return clock.NewManual(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

/*
TestDebounce_OnlyLastQuerySent types "abc" then "abcd" within the quiet period
and expects exactly one backend query, for "abcd".
*/
func TestDebounce_OnlyLastQuerySent(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/posts", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, pagination.Page[blog.Post]{First: true, Last: true})
	})

	clk := newClock()
	feed := paging.NewFeed(backend.Client(t, nil), discardLogger)
	debouncer := search.NewDebouncer(clk, func(query string) {
		feed.SetSearch(query)
		_, _ = feed.Fetch(context.Background())
	}, nil)

	debouncer.Input("abc")
	clk.Advance(300 * time.Millisecond)
	debouncer.Input("abcd")
	assert.Equal(t, "abcd", debouncer.Raw())
	assert.Empty(t, debouncer.Settled())

	clk.Advance(499 * time.Millisecond)
	assert.Empty(t, backend.Requests())

	clk.Advance(1 * time.Millisecond)
	requests := backend.Requests()
	require.Len(t, requests, 1)

	query, err := url.ParseQuery(requests[0].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "abcd", query.Get("search"))
	assert.Equal(t, "0", query.Get("page"))

	clk.Advance(time.Minute)
	assert.Len(t, backend.Requests(), 1)
}

func TestDebounce_ClearIsImmediate(t *testing.T) {
	clk := newClock()
	rec := &recorder{}
	debouncer := search.NewDebouncer(clk, rec.settle, nil)

	debouncer.Input("go")
	clk.Advance(500 * time.Millisecond)
	require.Equal(t, []string{"go"}, rec.all())

	debouncer.Input("gop")
	debouncer.Input("")
	assert.Equal(t, []string{"go", ""}, rec.all())
	assert.Equal(t, 0, clk.Pending())

	// Clearing an already-clear box does not query again.
	debouncer.Input("")
	assert.Equal(t, []string{"go", ""}, rec.all())
}

func TestDebounce_SameValueNotResent(t *testing.T) {
	clk := newClock()
	rec := &recorder{}
	debouncer := search.NewDebouncer(clk, rec.settle, nil)

	debouncer.Input("rust")
	clk.Advance(time.Second)
	debouncer.Input("rus")
	debouncer.Input("rust")
	clk.Advance(time.Second)

	assert.Equal(t, []string{"rust"}, rec.all())
}

/*
TestDebounce_ResetsPagination verifies that a settled query rewinds the feed.
*/
func TestDebounce_ResetsPagination(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/posts", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, pagination.Page[blog.Post]{PageNumber: 2, TotalPages: 5})
	})

	clk := newClock()
	feed := paging.NewFeed(backend.Client(t, nil), discardLogger)
	_, err := feed.GoTo(context.Background(), 2)
	require.NoError(t, err)

	debouncer := search.NewDebouncer(clk, func(query string) { feed.SetSearch(query) }, nil)
	debouncer.Input("go")
	assert.Equal(t, 2, feed.PageIndex())

	clk.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, feed.PageIndex())
}

func TestDebounce_Stop(t *testing.T) {
	clk := newClock()
	rec := &recorder{}
	debouncer := search.NewDebouncer(clk, rec.settle, nil)

	debouncer.Input("go")
	debouncer.Stop()
	clk.Advance(time.Second)

	assert.Empty(t, rec.all())
}
