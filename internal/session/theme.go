// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/storage"
)

// Theme is the per-device appearance preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Appearance is the persisted theme preference with a system fallback.
type Appearance struct {
	mu     sync.RWMutex
	store  storage.Store
	logger *slog.Logger

	current  Theme
	explicit bool
}

// LoadAppearance reads the stored preference. Absent or unknown values fall
// back to the system default (dark when preferDark is set).
func LoadAppearance(ctx context.Context, store storage.Store, preferDark bool, logger *slog.Logger) *Appearance {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Appearance{store: store, logger: logger, current: ThemeLight}
	if preferDark {
		a.current = ThemeDark
	}

	raw, err := store.Get(ctx, constants.StorageKeyTheme)
	if err != nil {
		if !storage.IsAbsent(err) {
			logger.WarnContext(ctx, "theme_read_failed", slog.Any("error", err))
		}
		return a
	}

	if theme := Theme(raw); theme.Valid() {
		a.current = theme
		a.explicit = true
	}
	return a
}

// Current returns the active theme.
func (a *Appearance) Current() Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// Explicit reports whether the theme was chosen by the user rather than
// inherited from the system default.
func (a *Appearance) Explicit() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.explicit
}

// Set persists theme as the user's choice.
func (a *Appearance) Set(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("session: unknown theme %q", theme)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Set(ctx, constants.StorageKeyTheme, string(theme)); err != nil {
		return fmt.Errorf("session: persist theme: %w", err)
	}

	a.current = theme
	a.explicit = true
	return nil
}

// Toggle switches to the opposite theme and persists it.
func (a *Appearance) Toggle(ctx context.Context) (Theme, error) {
	next := a.Current().Opposite()
	if err := a.Set(ctx, next); err != nil {
		return a.Current(), err
	}
	return next, nil
}
