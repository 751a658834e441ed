// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session holds the client's proof of authentication and the cached
identity that goes with it.

The session is an explicit object created once by the composition root and
passed to every consumer (the API client reads its token, the mutation
controller asks whether a user is logged in). There is no package-level state.

Lifecycle:

 1. [Load] reads the persisted token and user record. An unreadable user record
    purges both keys and yields a logged-out session: corruption is "no
    session", never an error.
 2. [Store.Login] persists both values and updates memory.
 3. [Store.Logout] clears both.
*/
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/sec"
	"github.com/taibuivan/phoenix/internal/storage"
)

// Store is the persistent session of the current user. It is safe for
// concurrent use.
type Store struct {
	mu     sync.RWMutex
	store  storage.Store
	logger *slog.Logger

	token string
	user  *blog.User
}

// Load restores the session persisted in store.
func Load(ctx context.Context, store storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{store: store, logger: logger}

	token, tokenErr := store.Get(ctx, constants.StorageKeyToken)

	var user *blog.User
	userErr := storage.GetJSON(ctx, store, constants.StorageKeyUser, &user)

	switch {
	case errors.Is(tokenErr, storage.ErrCorrupt) || errors.Is(userErr, storage.ErrCorrupt):
		logger.WarnContext(ctx, "session_corrupt_purged",
			slog.Any("token_error", tokenErr),
			slog.Any("user_error", userErr),
		)
		s.purge(ctx)
		return s

	case tokenErr != nil && !storage.IsAbsent(tokenErr):
		logger.WarnContext(ctx, "session_read_failed", slog.Any("error", tokenErr))
		return s

	case userErr != nil && !storage.IsAbsent(userErr):
		logger.WarnContext(ctx, "session_read_failed", slog.Any("error", userErr))
		return s
	}

	// Half a session (or a JSON null user) is no session.
	if token == "" || user == nil {
		if tokenErr == nil || userErr == nil {
			logger.InfoContext(ctx, "session_incomplete_purged")
			s.purge(ctx)
		}
		return s
	}

	s.token = token
	s.user = user

	logger.DebugContext(ctx, "session_restored", slog.String("user", user.Email))
	return s
}

// # Mutations

// Login persists token and user and marks the session authenticated.
//
// The token format is not checked; the backend is trusted.
func (s *Store) Login(ctx context.Context, token string, user blog.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, constants.StorageKeyToken, token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if err := storage.SetJSON(ctx, s.store, constants.StorageKeyUser, user); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}

	s.token = token
	s.user = &user

	s.logger.InfoContext(ctx, "session_login", slog.String("user", user.Email))
	return nil
}

// Logout clears the persisted session and the in-memory state.
//
// Memory is cleared even when storage fails, so the current process is
// logged out either way.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	err := errors.Join(
		s.store.Delete(ctx, constants.StorageKeyToken),
		s.store.Delete(ctx, constants.StorageKeyUser),
	)
	if err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}

	s.logger.InfoContext(ctx, "session_logout")
	return nil
}

// purge deletes both persisted keys, logging (not returning) failures.
func (s *Store) purge(ctx context.Context) {
	for _, key := range []string{constants.StorageKeyToken, constants.StorageKeyUser} {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "session_purge_failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// # Accessors

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached identity.
func (s *Store) User() (blog.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return blog.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated is derived from the token and user; it is never stored.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsAdmin reports whether the logged-in user has the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil && s.user.IsAdmin()
}

// TokenExpiry returns the expiry claimed by the token, if it is a JWT that
// carries one. It is informational only.
func (s *Store) TokenExpiry() (time.Time, bool) {
	info, ok := sec.Inspect(s.Token())
	if !ok || info.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return info.ExpiresAt, true
}
