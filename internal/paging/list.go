// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package paging holds the state of a paginated, filterable list (the post feed,
a post's comments, the notification inbox).

Contract:

  - The page index is 0-based and the size is fixed per list.
  - Every fetch sends (page, size) plus the active filters.
  - The server's first/last/totalPages/totalElements are ground truth; the
    list never recomputes page boundaries.
  - Next and Previous are no-ops at the last and first page.
  - The page index moves only when the new page has arrived.
  - Any filter change resets the page index to 0 before the next fetch.

Overlapping fetches are not cancelled; each is tagged with a sequence number
and only the latest-issued one updates the visible page.
*/
package paging

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// Fetcher loads one page of a list.
type Fetcher[T any] func(ctx context.Context, filter blog.ListFilter, params pagination.Params) (pagination.Page[T], error)

// State is a consistent snapshot of a [List].
type State[T any] struct {
	PageIndex int
	Size      int
	Filter    blog.ListFilter
	Data      pagination.Page[T]
	Loaded    bool
	Loading   bool

	// Message is the inline error of the last fetch, or "".
	Message string
}

// Options configures a [List].
type Options struct {
	// Size is the fixed page size.
	Size int

	// ErrorMessage is shown when a fetch fails without a backend message.
	ErrorMessage string

	// InitialSort seeds the sort filter.
	InitialSort string

	Logger *slog.Logger
}

// List is the controller of one paginated list. It is safe for concurrent use.
type List[T any] struct {
	fetch  Fetcher[T]
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	page     int
	filter   blog.ListFilter
	data     pagination.Page[T]
	loaded   bool
	inFlight int
	message  string
	issued   uint64
}

// New returns a list positioned at the first page with no filters.
func New[T any](fetch Fetcher[T], opts Options) *List[T] {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ErrorMessage == "" {
		opts.ErrorMessage = "Failed to load"
	}

	return &List[T]{
		fetch:  fetch,
		opts:   opts,
		logger: opts.Logger,
		page:   pagination.FirstPage,
		filter: blog.ListFilter{Sort: opts.InitialSort},
		data:   pagination.Empty[T](),
	}
}

// # State

// Snapshot returns the current state.
func (l *List[T]) Snapshot() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return State[T]{
		PageIndex: l.page,
		Size:      l.opts.Size,
		Filter:    l.filter,
		Data:      l.data,
		Loaded:    l.loaded,
		Loading:   l.inFlight > 0,
		Message:   l.message,
	}
}

// PageIndex returns the page the next fetch will request.
func (l *List[T]) PageIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// # Filters

// SetSearch changes the search text. Surrounding whitespace is not sent.
// It reports whether the filter changed (and the page was reset).
func (l *List[T]) SetSearch(search string) bool {
	search = strings.TrimSpace(search)
	return l.setFilter(func(f *blog.ListFilter) bool {
		if f.Search == search {
			return false
		}
		f.Search = search
		return true
	})
}

// SetTag changes the tag filter; "" shows every tag.
func (l *List[T]) SetTag(tag string) bool {
	return l.setFilter(func(f *blog.ListFilter) bool {
		if f.Tag == tag {
			return false
		}
		f.Tag = tag
		return true
	})
}

// SetSort changes the ordering.
func (l *List[T]) SetSort(sort string) bool {
	sort = blog.NormalizeSort(sort)
	return l.setFilter(func(f *blog.ListFilter) bool {
		if blog.NormalizeSort(f.Sort) == sort {
			return false
		}
		f.Sort = sort
		return true
	})
}

// setFilter applies change and, when it reports a change, rewinds to page 0.
func (l *List[T]) setFilter(change func(*blog.ListFilter) bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !change(&l.filter) {
		return false
	}
	l.page = pagination.FirstPage
	return true
}

// # Navigation

// Query is a filter change and a page request applied as one step.
type Query struct {
	Search string
	Tag    string

	// Sort keeps the current ordering when "".
	Sort string

	// Page is ignored when any filter changed; the list restarts at page 0.
	Page int
}

// Fetch loads the current page with the active filters.
func (l *List[T]) Fetch(ctx context.Context) (State[T], error) {
	return l.load(ctx, func() int { return l.page })
}

// Retry repeats the fetch of the page on display.
func (l *List[T]) Retry(ctx context.Context) (State[T], error) {
	return l.Fetch(ctx)
}

// Next loads the following page. It is a no-op on the last page.
// The page index only advances once the new page has arrived.
func (l *List[T]) Next(ctx context.Context) (State[T], bool, error) {
	l.mu.Lock()
	if l.data.Last {
		l.mu.Unlock()
		return l.Snapshot(), false, nil
	}
	l.mu.Unlock()

	state, err := l.load(ctx, func() int { return l.page + 1 })
	return state, true, err
}

// Previous loads the preceding page. It is a no-op on the first page.
func (l *List[T]) Previous(ctx context.Context) (State[T], bool, error) {
	l.mu.Lock()
	if l.data.First || l.page == pagination.FirstPage {
		l.mu.Unlock()
		return l.Snapshot(), false, nil
	}
	l.mu.Unlock()

	state, err := l.load(ctx, func() int { return max(l.page-1, pagination.FirstPage) })
	return state, true, err
}

// GoTo loads page index. Negative indexes clamp to the first page.
func (l *List[T]) GoTo(ctx context.Context, index int) (State[T], error) {
	return l.load(ctx, func() int { return max(index, pagination.FirstPage) })
}

// Apply sets the filters and loads a page under one lock, so a concurrent
// caller cannot slip its own filters in between. It reports whether the
// filters changed. The returned state always describes this call's own
// fetch, even when a newer one has since replaced the shared page.
func (l *List[T]) Apply(ctx context.Context, q Query) (State[T], bool, error) {
	search := strings.TrimSpace(q.Search)
	changed := false

	state, err := l.load(ctx, func() int {
		if l.filter.Search != search {
			l.filter.Search = search
			changed = true
		}
		if l.filter.Tag != q.Tag {
			l.filter.Tag = q.Tag
			changed = true
		}
		if q.Sort != "" {
			if sort := blog.NormalizeSort(q.Sort); blog.NormalizeSort(l.filter.Sort) != sort {
				l.filter.Sort = sort
				changed = true
			}
		}
		if changed {
			l.page = pagination.FirstPage
			return pagination.FirstPage
		}
		return max(q.Page, pagination.FirstPage)
	})
	return state, changed, err
}

// load issues one fetch for the page chosen by target, which runs with the
// lock held. The page index is committed only when the fetch succeeds and
// is still the latest one issued.
func (l *List[T]) load(ctx context.Context, target func() int) (State[T], error) {
	l.mu.Lock()
	l.issued++
	seq := l.issued
	params := pagination.Params{Page: target(), Size: l.opts.Size}
	filter := l.filter
	l.inFlight++
	l.mu.Unlock()

	page, err := l.fetch(ctx, filter, params)
	if err == nil && page.Content == nil {
		page.Content = []T{}
	}

	l.mu.Lock()
	l.inFlight--
	if seq != l.issued {
		own := State[T]{
			PageIndex: params.Page,
			Size:      params.Size,
			Filter:    filter,
			Data:      page,
			Loaded:    err == nil,
			Loading:   l.inFlight > 0,
		}
		if err != nil {
			own.Data = pagination.Empty[T]()
			own.Message = apperr.MessageOr(err, l.opts.ErrorMessage)
		}
		l.mu.Unlock()
		l.logger.DebugContext(ctx, "list_fetch_superseded", slog.Int("page", params.Page), slog.Uint64("seq", seq))
		return own, err
	}

	if err != nil {
		l.message = apperr.MessageOr(err, l.opts.ErrorMessage)
		l.mu.Unlock()
		l.logger.WarnContext(ctx, "list_fetch_failed", slog.Int("page", params.Page), slog.Any("error", err))
		return l.Snapshot(), err
	}

	l.page = params.Page
	l.data = page
	l.loaded = true
	l.message = ""
	l.mu.Unlock()

	return l.Snapshot(), nil
}
