// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app is the composition root of the Phoenix client.

It turns a [config.Config] into the object graph every front end shares: the
durable store, the session, the backend client, and the controllers built on
top of them. Both the CLI and the local gateway start from an [App].

Startup order:

 1. Open durable storage (migrating PostgreSQL when selected).
 2. Restore the session and the theme preference from it.
 3. Build the backend client with the session as its token source.
 4. Construct the long-lived controllers.

No controller reads configuration or storage on its own; everything is passed
in here.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taibuivan/phoenix/internal/account"
	"github.com/taibuivan/phoenix/internal/apiclient"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/editor"
	"github.com/taibuivan/phoenix/internal/gateway"
	"github.com/taibuivan/phoenix/internal/mutation"
	"github.com/taibuivan/phoenix/internal/notify"
	"github.com/taibuivan/phoenix/internal/paging"
	"github.com/taibuivan/phoenix/internal/payment"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/internal/route"
	"github.com/taibuivan/phoenix/internal/search"
	"github.com/taibuivan/phoenix/internal/session"
	"github.com/taibuivan/phoenix/internal/storage"
)

// App holds the shared object graph.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Store      storage.Store
	Session    *session.Store
	Appearance *session.Appearance
	Client     *apiclient.Client
	Nav        *route.History

	Account   *account.Service
	Feed      *paging.List[blog.Post]
	Likes     *mutation.Likes
	Bookmarks *mutation.Bookmarks
	Follows   *mutation.Follows
	Unread    *notify.Poller
}

// Options overrides collaborators that are normally derived from config.
type Options struct {
	// Clock defaults to the wall clock.
	Clock clock.Clock

	// Store skips opening the configured backend.
	Store storage.Store
}

// New builds the object graph.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}

	// ── 1. Storage ────────────────────────────────────────────────────────
	store := opts.Store
	if store == nil {
		var err error
		if store, err = storage.Open(ctx, cfg, logger); err != nil {
			return nil, fmt.Errorf("app: open storage: %w", err)
		}
	}

	// ── 2. Metrics ────────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// ── 3. Session ────────────────────────────────────────────────────────
	sess := session.Load(ctx, store, logger)
	appearance := session.LoadAppearance(ctx, store, cfg.PreferDark, logger)

	// ── 4. Backend client ─────────────────────────────────────────────────
	client, err := apiclient.New(apiclient.Options{
		BaseURL: cfg.APIBaseURL,
		Tokens:  sess,
		Logger:  logger,
		Metrics: m,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	// ── 5. Controllers ────────────────────────────────────────────────────
	nav := route.NewHistory(logger)

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Clock:      clk,
		Registry:   registry,
		Metrics:    m,
		Store:      store,
		Session:    sess,
		Appearance: appearance,
		Client:     client,
		Nav:        nav,
		Account:    account.NewService(client, sess, nav, clk, logger),
		Feed:       paging.NewFeed(client, logger),
		Likes:      mutation.NewLikes(client, sess, nav, logger, m),
		Bookmarks:  mutation.NewBookmarks(client, sess, nav, logger, m),
		Follows:    mutation.NewFollows(client, sess, nav, logger, m),
		Unread:     notify.NewPoller(client, sess, clk, logger),
	}

	logger.Debug("app_ready",
		slog.String("api", cfg.APIBaseURL),
		slog.String("storage", cfg.Storage),
		slog.Bool("authenticated", sess.IsAuthenticated()),
	)
	return a, nil
}

// Close releases the durable store and stops background polling.
func (a *App) Close() error {
	a.Unread.Stop()
	return a.Store.Close()
}

// # Per-use Controllers

// Comments returns the comment list of postID.
func (a *App) Comments(postID string) *paging.List[blog.Comment] {
	return paging.NewComments(a.Client, postID, a.Logger)
}

// Inbox returns the notification list.
func (a *App) Inbox() *paging.List[blog.Notification] {
	return paging.NewInbox(a.Client, a.Logger)
}

// Search returns a debouncer that applies settled queries to the feed. It
// serves front ends that see raw keystrokes; callers holding a final query
// set it on the feed directly.
func (a *App) Search(onSettle func(query string)) *search.Debouncer {
	return search.NewDebouncer(a.Clock, func(query string) {
		a.Feed.SetSearch(query)
		if onSettle != nil {
			onSettle(query)
		}
	}, a.Metrics)
}

// EditorDeps returns the collaborators of the post editor.
func (a *App) EditorDeps() editor.Deps {
	return editor.Deps{
		API:     a.Client,
		Store:   a.Store,
		Clock:   a.Clock,
		Nav:     a.Nav,
		Logger:  a.Logger,
		Metrics: a.Metrics,
	}
}

// Payments returns the checkout flow driven by checkout.
func (a *App) Payments(checkout payment.Checkout) *payment.Flow {
	return payment.NewFlow(a.Client, checkout, a.Session, a.Nav, a.Logger)
}

// # Gateway

// Gateway builds the local HTTP server over the shared controllers.
func (a *App) Gateway(ctx context.Context) *gateway.Server {
	liveness, readiness := gateway.NewHealthHandlers(gateway.HealthDependencies{
		Storage: func(ctx context.Context) error {
			_, err := a.Store.Get(ctx, constants.StorageKeyTheme)
			if storage.IsAbsent(err) {
				return nil
			}
			return err
		},
		Backend: func(ctx context.Context) error {
			_, err := a.Client.Tags(ctx)
			return err
		},
	}, a.Logger)

	return gateway.NewServer(ctx, a.Config, a.Logger, gateway.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   a.Metrics,
		Gatherer:  a.Registry,
		API: gateway.NewHandler(gateway.Controllers{
			Session:    a.Session,
			Appearance: a.Appearance,
			Account:    a.Account,
			Feed:       a.Feed,
			Likes:      a.Likes,
			Bookmarks:  a.Bookmarks,
			Follows:    a.Follows,
			Unread:     a.Unread,
			Admin:      a.Client,
			Drafts:     a.Store,
			Clock:      a.Clock,
		}),
	})
}
