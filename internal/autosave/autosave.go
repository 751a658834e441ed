// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package autosave keeps an in-progress post editor safe across restarts.

States:

	clean ──(field change)──▶ dirty ──(interval elapsed)──▶ saving ──▶ clean

The save fires a fixed interval after the form first became dirty, and only
if it is still dirty at that moment. "Dirty" means the form differs from what
was last persisted; for a fresh editor that is its baseline (the empty form,
or the server's values when editing a post).

On mount, a record older than the TTL is deleted unconditionally. A fresher
one is offered for restore or dismissal and never applied silently. A
successful submit deletes the record of that editing context.

When a record is restored into the edit flow, the baseline stays the
server-fetched post: [Controller.Changed] always compares against the server.
*/
package autosave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/internal/storage"
)

// State is the persistence state of the editor.
type State string

const (
	StateClean  State = "clean"
	StateDirty  State = "dirty"
	StateSaving State = "saving"
)

// Controller tracks one editing context. It is safe for concurrent use.
type Controller struct {
	store    storage.Store
	clock    clock.Clock
	key      string
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics

	mu        sync.Mutex
	ctx       context.Context
	state     State
	baseline  blog.PostForm
	persisted blog.PostForm
	form      blog.PostForm
	offer     *Record
	timer     clock.Timer
	gen       uint64
	lastSaved time.Time
}

// New returns a controller for the editing context stored under key
// (see [KeyFor]).
func New(store storage.Store, clk clock.Clock, key string, logger *slog.Logger, m *metrics.Metrics) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:    store,
		clock:    clk,
		key:      key,
		interval: constants.AutosaveInterval,
		ttl:      constants.DraftTTL,
		logger:   logger.With(slog.String("draft", key)),
		metrics:  m,
		ctx:      context.Background(),
		state:    StateClean,
	}
}

// # Lifecycle

// Mount initialises the editor with baseline and looks for a record to offer.
//
// It returns the offered record, if any. Read failures are logged and treated
// as "no record"; they never block the editor.
func (c *Controller) Mount(ctx context.Context, baseline blog.PostForm) (Record, bool) {
	if baseline.Tags == nil {
		baseline.Tags = []string{}
	}

	record, purged, err := Load(ctx, c.store, c.key, c.clock.Now(), c.ttl)
	if purged {
		c.metrics.ObserveAutosave(metrics.AutosavePurged)
		c.logger.InfoContext(ctx, "autosave_purged")
	}
	if err != nil && !errors.Is(err, ErrNoRecord) {
		c.logger.WarnContext(ctx, "autosave_read_failed", slog.Any("error", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimer()
	c.ctx = context.WithoutCancel(ctx)
	c.baseline = baseline
	c.persisted = baseline
	c.form = baseline
	c.state = StateClean
	c.offer = nil

	if err != nil {
		return Record{}, false
	}
	c.offer = &record
	return record, true
}

// Offer returns the record awaiting a restore or dismiss decision.
func (c *Controller) Offer() (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.offer == nil {
		return Record{}, false
	}
	return *c.offer, true
}

// Restore applies the offered record to the form and returns the new form.
//
// The record stays persisted as it is, so the restored form starts clean;
// [Controller.Changed] still reports its difference from the baseline.
func (c *Controller) Restore() (blog.PostForm, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.offer == nil {
		return c.form, false
	}

	c.form = c.offer.PostForm
	c.persisted = c.offer.PostForm
	c.lastSaved = c.offer.SavedAt()
	c.offer = nil
	c.metrics.ObserveAutosave(metrics.AutosaveRestored)
	return c.form, true
}

// Dismiss rejects the offered record and deletes it.
func (c *Controller) Dismiss(ctx context.Context) error {
	c.mu.Lock()
	hadOffer := c.offer != nil
	c.offer = nil
	c.mu.Unlock()

	if !hadOffer {
		return nil
	}

	c.metrics.ObserveAutosave(metrics.AutosaveDismissed)
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("autosave: dismiss: %w", err)
	}
	return nil
}

// # Editing

// Update records the current form values.
func (c *Controller) Update(form blog.PostForm) State {
	if form.Tags == nil {
		form.Tags = []string{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
	if c.state == StateSaving {
		return c.state
	}

	if form.Equal(c.persisted) {
		c.state = StateClean
		return c.state
	}

	c.state = StateDirty
	c.scheduleLocked()
	return c.state
}

// fire is the interval callback.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	ctx := c.ctx
	c.mu.Unlock()

	if err := c.save(ctx); err != nil {
		c.logger.WarnContext(ctx, "autosave_failed", slog.Any("error", err))
	}
}

// Flush saves immediately if the form is dirty.
func (c *Controller) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimer()
	c.mu.Unlock()

	return c.save(ctx)
}

// save persists the form if it is still dirty.
func (c *Controller) save(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateDirty {
		c.mu.Unlock()
		return nil
	}
	c.state = StateSaving
	snapshot := c.form
	now := c.clock.Now()
	c.mu.Unlock()

	_, err := Save(ctx, c.store, c.key, snapshot, now)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.metrics.ObserveAutosave(metrics.AutosaveFailed)
		c.state = StateDirty
		c.scheduleLocked()
		return err
	}

	c.metrics.ObserveAutosave(metrics.AutosaveSaved)
	c.persisted = snapshot
	c.lastSaved = now
	c.state = StateClean

	// Edits made while saving start a new interval.
	if !c.form.Equal(snapshot) {
		c.state = StateDirty
		c.scheduleLocked()
	}
	return nil
}

// Submitted clears the record after the post was accepted by the backend.
// The submitted form becomes the new baseline.
func (c *Controller) Submitted(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimer()
	c.baseline = c.form
	c.persisted = c.form
	c.state = StateClean
	c.offer = nil
	c.mu.Unlock()

	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("autosave: clear after submit: %w", err)
	}
	return nil
}

// Close stops the interval without touching storage.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
}

// # Accessors

// State returns the persistence state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Form returns the current form values.
func (c *Controller) Form() blog.PostForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Changed reports whether the form differs from the baseline it was mounted
// with (the server's values in the edit flow).
func (c *Controller) Changed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.form.Equal(c.baseline)
}

// LastSaved returns when the form was last persisted, or the zero time.
func (c *Controller) LastSaved() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}

// scheduleLocked arms the interval if none is pending. Caller must hold c.mu.
func (c *Controller) scheduleLocked() {
	if c.timer != nil {
		return
	}
	c.gen++
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.interval, func() { c.fire(gen) })
}

// stopTimer cancels the pending interval. Caller must hold c.mu.
func (c *Controller) stopTimer() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
