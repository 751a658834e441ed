// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mutation implements the server-confirmed toggles (like, bookmark,
follow).

A toggle never guesses: local state changes only when the backend answers, and
then it takes the backend's values verbatim.

Ordering:

Requests for the same entity are not serialized on the wire. Each one is
tagged with a per-entity sequence number when it is issued:

  - A response is applied only if no later-issued response was applied first.
    Older responses landing late are discarded.
  - A failure restores the state captured when the request was issued, unless
    another response was applied in the meantime, in which case that newer
    server state is kept. The error is returned to the caller.

Two requests may still both reach the backend; which toggle wins there is up
to the backend. The client only guarantees it shows the newest answer.
*/
package mutation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/internal/route"
)

// Gate tells whether a mutation may be attempted.
type Gate interface {
	IsAuthenticated() bool
}

// entry is the tracked state of one entity.
type entry[S any] struct {
	state   S
	known   bool
	issued  uint64
	applied uint64
	pending int
}

// Controller tracks server-confirmed state per entity ID. It is safe for
// concurrent use.
type Controller[S any] struct {
	kind    string
	gate    Gate
	nav     route.Navigator
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu       sync.Mutex
	entities map[string]*entry[S]
}

// New returns a controller for one kind of toggle ("like", "bookmark", ...).
func New[S any](kind string, gate Gate, nav route.Navigator, logger *slog.Logger, m *metrics.Metrics) *Controller[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[S]{
		kind:     kind,
		gate:     gate,
		nav:      nav,
		logger:   logger,
		metrics:  m,
		entities: make(map[string]*entry[S]),
	}
}

// Seed records state fetched by a read (a post page, a profile). It does not
// touch sequence numbers, so a mutation already in flight still wins.
func (c *Controller[S]) Seed(id string, state S) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(id)
	e.state = state
	e.known = true
}

// State returns the last known state of id.
func (c *Controller[S]) State(id string) (S, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	if !ok || !e.known {
		var zero S
		return zero, false
	}
	return e.state, true
}

// Pending reports whether a request for id is in flight.
func (c *Controller[S]) Pending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	return ok && e.pending > 0
}

// Do runs request for id and reconciles its answer.
//
// Without a session it navigates to the login page and returns an
// UNAUTHENTICATED error without calling request. On success it returns the
// authoritative state after reconciliation, which is the current state when
// the answer was stale.
func (c *Controller[S]) Do(ctx context.Context, id string, request func(context.Context) (S, error)) (S, error) {
	var zero S

	if c.gate == nil || !c.gate.IsAuthenticated() {
		if c.nav != nil {
			c.nav.Navigate(route.Login)
		}
		c.metrics.ObserveMutation(c.kind, metrics.OutcomeRedirected)
		return zero, apperr.Unauthenticated()
	}

	c.mu.Lock()
	e := c.entry(id)
	e.issued++
	seq := e.issued
	snapshot, snapshotKnown, appliedAtIssue := e.state, e.known, e.applied
	e.pending++
	c.mu.Unlock()

	result, err := request(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	e.pending--

	if err != nil {
		outcome := metrics.OutcomeKept
		if e.applied == appliedAtIssue {
			e.state, e.known = snapshot, snapshotKnown
			outcome = metrics.OutcomeRolledBack
		}

		c.metrics.ObserveMutation(c.kind, outcome)
		c.logger.WarnContext(ctx, "mutation_failed",
			slog.String("kind", c.kind),
			slog.String("id", id),
			slog.Uint64("seq", seq),
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)
		return zero, err
	}

	if seq < e.applied {
		c.metrics.ObserveMutation(c.kind, metrics.OutcomeStale)
		c.logger.DebugContext(ctx, "mutation_stale_discarded",
			slog.String("kind", c.kind),
			slog.String("id", id),
			slog.Uint64("seq", seq),
			slog.Uint64("applied", e.applied),
		)
		return e.state, nil
	}

	e.state = result
	e.known = true
	e.applied = seq
	c.metrics.ObserveMutation(c.kind, metrics.OutcomeApplied)
	return result, nil
}

// entry returns the tracked entity, creating it. Caller must hold c.mu.
func (c *Controller[S]) entry(id string) *entry[S] {
	e, ok := c.entities[id]
	if !ok {
		e = &entry[S]{}
		c.entities[id] = e
	}
	return e
}
