// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package autosave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/storage"
)

// Record is the persisted snapshot of an editor.
//
// The form fields are stored inline next to the timestamp, in Unix
// milliseconds.
type Record struct {
	blog.PostForm
	Timestamp int64 `json:"timestamp"`
}

// NewRecord stamps form with at.
func NewRecord(form blog.PostForm, at time.Time) Record {
	if form.Tags == nil {
		form.Tags = []string{}
	}
	return Record{PostForm: form, Timestamp: at.UnixMilli()}
}

// SavedAt returns when the record was written.
func (r Record) SavedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Stale reports whether the record is older than ttl at now.
func (r Record) Stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.SavedAt()) > ttl
}

// # Keys

// KeyFor returns the storage key of an editing context. An empty postID is
// the "create post" editor.
func KeyFor(postID string) string {
	if postID == "" {
		return constants.StorageKeyDraftNew
	}
	return constants.StorageKeyDraftEditPrefix + postID
}

// # Storage Helpers

// ErrNoRecord is returned by [Load] when there is nothing to offer.
var ErrNoRecord = errors.New("autosave: no record")

// Load reads the record under key.
//
// Stale and unreadable records are deleted and reported as [ErrNoRecord];
// purged tells the caller a record was removed.
func Load(ctx context.Context, store storage.Store, key string, now time.Time, ttl time.Duration) (record Record, purged bool, err error) {
	err = storage.GetJSON(ctx, store, key, &record)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return Record{}, false, ErrNoRecord
	case errors.Is(err, storage.ErrCorrupt):
		if delErr := store.Delete(ctx, key); delErr != nil {
			return Record{}, false, fmt.Errorf("autosave: purge %s: %w", key, delErr)
		}
		return Record{}, true, ErrNoRecord
	case err != nil:
		return Record{}, false, fmt.Errorf("autosave: read %s: %w", key, err)
	}

	if record.Stale(now, ttl) {
		if delErr := store.Delete(ctx, key); delErr != nil {
			return Record{}, false, fmt.Errorf("autosave: purge %s: %w", key, delErr)
		}
		return Record{}, true, ErrNoRecord
	}

	if record.Tags == nil {
		record.Tags = []string{}
	}
	return record, false, nil
}

// Save writes form under key, stamped with now.
func Save(ctx context.Context, store storage.Store, key string, form blog.PostForm, now time.Time) (Record, error) {
	record := NewRecord(form, now)
	if err := storage.SetJSON(ctx, store, key, record); err != nil {
		return Record{}, fmt.Errorf("autosave: write %s: %w", key, err)
	}
	return record, nil
}
