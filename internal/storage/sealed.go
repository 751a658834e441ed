// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"fmt"

	"github.com/taibuivan/phoenix/internal/platform/sec"
)

// Sealed encrypts every value before it reaches the inner [Store].
//
// A value that cannot be opened (written unsealed, tampered with, or sealed
// under another passphrase) is reported as [ErrCorrupt].
type Sealed struct {
	inner  Store
	sealer *sec.Sealer
}

// NewSealed wraps inner.
func NewSealed(inner Store, sealer *sec.Sealer) *Sealed {
	return &Sealed{inner: inner, sealer: sealer}
}

func (s *Sealed) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	value, err := s.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return value, nil
}

func (s *Sealed) Set(ctx context.Context, key, value string) error {
	sealed, err := s.sealer.Seal(value)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *Sealed) Close() error { return s.inner.Close() }
