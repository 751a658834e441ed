// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import (
	"log/slog"
	"slices"
	"sync"
)

// Navigator moves the front end to another route.
type Navigator interface {
	Navigate(path string)
}

// History is an in-memory [Navigator] that records every navigation.
//
// The CLI prints the last entry; the gateway reports it back to the browser
// as a redirect hint. It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []string
	logger  *slog.Logger
}

// NewHistory returns a history positioned at [Home].
func NewHistory(logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{entries: []string{Home}, logger: logger}
}

// Navigate implements [Navigator].
func (h *History) Navigate(path string) {
	h.mu.Lock()
	h.entries = append(h.entries, path)
	h.mu.Unlock()

	h.logger.Debug("navigate", slog.String("path", path))
}

// Current returns the route the front end is on.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

// Back pops the current route and returns the previous one. At the first
// entry it stays put.
func (h *History) Back() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 1 {
		h.entries = h.entries[:len(h.entries)-1]
	}
	return h.entries[len(h.entries)-1]
}

// Entries returns a copy of the whole history, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}
