// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package storage provides the durable client storage the Phoenix client keeps
// its session, theme preference, and form autosave records in.
//
// # Architecture
//
// Storage is a flat string key/value space. Every value is a JSON document
// encoded as a string. Writes are last-write-wins; there is no cross-process
// locking, matching what a browser's local storage offers.
//
// Backends:
//
//   - Memory: process-local, used by tests and by `--storage memory`.
//   - SQLite: a single file next to the user's config (default).
//   - Redis: a shared device profile across machines.
//   - PostgreSQL: a shared profile for gateways deployed on a team host.
//
// Any backend can be wrapped with [Sealed] so that values are encrypted at rest.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taibuivan/phoenix/internal/platform/dberr"
)

var (
	// ErrNotFound is returned by [Store.Get] when the key has no value.
	ErrNotFound = dberr.ErrNotFound

	// ErrCorrupt is returned when a stored value exists but cannot be decoded.
	// Callers treat it exactly like [ErrNotFound], after purging the key.
	ErrCorrupt = errors.New("storage: value is corrupt")
)

// Store is a durable string key/value store.
type Store interface {
	// Get returns the value for key, or [ErrNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// # JSON Helpers

// GetJSON reads key and decodes it into target.
//
// It returns [ErrNotFound] for absent keys and an error wrapping [ErrCorrupt]
// when the stored string is not valid JSON for target.
func GetJSON(ctx context.Context, store Store, key string, target any) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}

	return nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, store Store, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}

	return store.Set(ctx, key, string(encoded))
}

// IsAbsent reports whether err means "treat as no value": the key is missing
// or its value is unreadable.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt)
}
