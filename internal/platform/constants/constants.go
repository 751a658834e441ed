// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire client.

It defines controller timings, page sizes, storage keys, and cross-cutting header
names that are shared between different layers of the system.

Categories:

  - Controller Timing: Debounce, autosave, and polling intervals.
  - Paging: Page sizes the backend expects for each list.
  - Storage: Keys used in durable client storage.
  - Gateway: Read/Write/Idle timeouts and rate limits for the local HTTP surface.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the controllers.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "phoenix"
	AppVersion = "0.1.0-dev"
)

// # Controller Timing

const (
	// SearchDebounce is the quiet period before a typed search query is sent.
	SearchDebounce = 500 * time.Millisecond

	// AutosaveInterval is how long a dirty form waits before it is persisted.
	AutosaveInterval = 30 * time.Second

	// DraftTTL is the age after which an autosave record is discarded unread.
	DraftTTL = 1 * time.Hour

	// NotificationPollInterval is how often the unread counter is refreshed.
	NotificationPollInterval = 30 * time.Second

	// ResetRedirectDelay is how long the password-reset success screen stays up.
	ResetRedirectDelay = 3 * time.Second
)

// # Paging

const (
	// PostsPageSize is the number of posts per page on the home feed.
	PostsPageSize = 6

	// CommentsPageSize is the number of top-level comments per page.
	CommentsPageSize = 10

	// NotificationsPageSize is the number of notifications per page.
	NotificationsPageSize = 15

	// DefaultSort is the post ordering used when none is chosen.
	DefaultSort = "newest"
)

// # Post Rules

const (
	// MaxTags is the maximum number of tags a post can carry.
	MaxTags = 5

	// MinPasswordLength is the minimum accepted length of a new password.
	MinPasswordLength = 6

	// PriceCurrency is the currency premium prices are typed in.
	PriceCurrency = "INR"
)

// # Roles

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// # Storage Keys

const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
	StorageKeyTheme = "theme-preference"

	// StorageKeyDraftNew holds the autosave record of the "create post" form.
	StorageKeyDraftNew = "autosave:new-post"

	// StorageKeyDraftEditPrefix is joined with a post ID for the "edit post" form.
	StorageKeyDraftEditPrefix = "autosave:edit-post:"
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"
)

// # Gateway Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 25 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 10 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Redis Prefixes

const (
	// RedisPrefixStorage namespaces client storage keys in a shared Redis.
	RedisPrefixStorage = "phoenix:storage:"
)
