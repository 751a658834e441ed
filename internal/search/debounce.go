// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package search debounces the feed's search box.
//
// The raw input is recorded immediately for display. The value used to query
// the backend follows it only after a quiet period with no further input.
// Clearing the box is not debounced: the unfiltered feed is requested at once.
package search

import (
	"sync"
	"time"

	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
)

// Debouncer turns keystrokes into settled search queries. It is safe for
// concurrent use.
type Debouncer struct {
	clock    clock.Clock
	delay    time.Duration
	onSettle func(query string)
	metrics  *metrics.Metrics

	mu      sync.Mutex
	raw     string
	settled string
	timer   clock.Timer
	gen     uint64
}

// NewDebouncer returns a debouncer that calls onSettle with each new settled
// query. onSettle runs on the clock's timer goroutine (or the caller's, for a
// cleared box) and never under the debouncer's lock.
func NewDebouncer(clk clock.Clock, onSettle func(query string), m *metrics.Metrics) *Debouncer {
	return &Debouncer{
		clock:    clk,
		delay:    constants.SearchDebounce,
		onSettle: onSettle,
		metrics:  m,
	}
}

// Input records what the user typed.
func (d *Debouncer) Input(raw string) {
	d.mu.Lock()

	d.raw = raw
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if raw == "" {
		changed := d.settled != ""
		d.settled = ""
		d.mu.Unlock()

		if changed {
			d.settle("")
		}
		return
	}

	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire promotes the raw input if no keystroke arrived since gen.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.raw == d.settled {
		d.mu.Unlock()
		return
	}
	d.settled = d.raw
	d.timer = nil
	query := d.settled
	d.mu.Unlock()

	d.settle(query)
}

func (d *Debouncer) settle(query string) {
	d.metrics.ObserveSearch()
	if d.onSettle != nil {
		d.onSettle(query)
	}
}

// Raw returns the input as typed.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Settled returns the query currently in effect.
func (d *Debouncer) Settled() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Stop cancels a pending settle.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
