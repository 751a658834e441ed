// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package notify keeps the unread notification counter fresh.
//
// The counter is polled on a fixed interval while a session exists. Polling
// stops when the context given to [Poller.Start] is cancelled.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/constants"
)

// API is the backend surface of the notification inbox.
type API interface {
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// Gate tells whether a session exists.
type Gate interface {
	IsAuthenticated() bool
}

// Poller owns the unread counter. It is safe for concurrent use.
type Poller struct {
	api      API
	gate     Gate
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	count   int64
	timer   clock.Timer
	gen     uint64
	running bool
}

// NewPoller returns a stopped poller.
func NewPoller(api API, gate Gate, clk clock.Clock, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		api:      api,
		gate:     gate,
		clock:    clk,
		interval: constants.NotificationPollInterval,
		logger:   logger,
	}
}

// # Polling

// Start refreshes the counter now and then on every interval until ctx is
// cancelled or [Poller.Stop] is called. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	context.AfterFunc(ctx, p.Stop)
	p.tick(ctx, gen)
}

// tick refreshes and schedules the next tick of generation gen.
func (p *Poller) tick(ctx context.Context, gen uint64) {
	if ctx.Err() != nil {
		return
	}

	if _, err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
		p.logger.WarnContext(ctx, "unread_poll_failed", slog.Any("error", err))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || gen != p.gen {
		return
	}
	p.timer = p.clock.AfterFunc(p.interval, func() { p.tick(ctx, gen) })
}

// Stop ends polling. The last known count is kept.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.running = false
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Running reports whether the poller is scheduled.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// # Counter

// Refresh asks the backend for the unread count. Without a session the count
// is zero and nothing is sent.
func (p *Poller) Refresh(ctx context.Context) (int64, error) {
	if !p.gate.IsAuthenticated() {
		p.set(0)
		return 0, nil
	}

	count, err := p.api.UnreadCount(ctx)
	if err != nil {
		return p.Count(), err
	}

	p.set(count)
	return count, nil
}

// Count returns the last known unread count.
func (p *Poller) Count() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *Poller) set(count int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = max(count, 0)
}

// MarkRead marks one notification read and re-reads the counter.
func (p *Poller) MarkRead(ctx context.Context, id string) (int64, error) {
	if !p.gate.IsAuthenticated() {
		return p.Count(), apperr.Unauthenticated()
	}
	if err := p.api.MarkRead(ctx, id); err != nil {
		return p.Count(), apperr.Surface(err, "Failed to mark notification as read")
	}
	return p.Refresh(ctx)
}

// MarkAllRead marks every notification read.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	if !p.gate.IsAuthenticated() {
		return apperr.Unauthenticated()
	}
	if err := p.api.MarkAllRead(ctx); err != nil {
		return apperr.Surface(err, "Failed to mark notifications as read")
	}
	p.set(0)
	return nil
}
