// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mutation

import (
	"context"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/internal/route"
)

// # Backend Contracts

// LikeAPI is the backend call behind [Likes].
type LikeAPI interface {
	ToggleLike(ctx context.Context, postID string) (blog.LikeState, error)
}

// BookmarkAPI is the backend call behind [Bookmarks].
type BookmarkAPI interface {
	ToggleBookmark(ctx context.Context, postID string) (bool, error)
}

// FollowAPI is the backend call behind [Follows].
type FollowAPI interface {
	ToggleFollow(ctx context.Context, username string) (bool, error)
}

// # Likes

// Likes tracks the like counter and flag of each post.
type Likes struct {
	*Controller[blog.LikeState]
	api LikeAPI
}

// NewLikes returns the like toggle.
func NewLikes(api LikeAPI, gate Gate, nav route.Navigator, logger *slog.Logger, m *metrics.Metrics) *Likes {
	return &Likes{Controller: New[blog.LikeState]("like", gate, nav, logger, m), api: api}
}

// SeedPost records the like state carried by a fetched post.
func (l *Likes) SeedPost(post blog.Post) {
	l.Seed(post.ID, blog.LikeState{LikeCount: post.LikeCount, LikedByCurrentUser: post.LikedByCurrentUser})
}

// Toggle flips the viewer's like on postID.
func (l *Likes) Toggle(ctx context.Context, postID string) (blog.LikeState, error) {
	return l.Do(ctx, postID, func(ctx context.Context) (blog.LikeState, error) {
		return l.api.ToggleLike(ctx, postID)
	})
}

// # Bookmarks

// Bookmarks tracks whether each post is saved by the viewer.
type Bookmarks struct {
	*Controller[bool]
	api BookmarkAPI
}

// NewBookmarks returns the bookmark toggle.
func NewBookmarks(api BookmarkAPI, gate Gate, nav route.Navigator, logger *slog.Logger, m *metrics.Metrics) *Bookmarks {
	return &Bookmarks{Controller: New[bool]("bookmark", gate, nav, logger, m), api: api}
}

// SeedPost records the bookmark flag carried by a fetched post.
func (b *Bookmarks) SeedPost(post blog.Post) {
	b.Seed(post.ID, post.BookmarkedByCurrentUser)
}

// Toggle flips the viewer's bookmark on postID.
func (b *Bookmarks) Toggle(ctx context.Context, postID string) (bool, error) {
	return b.Do(ctx, postID, func(ctx context.Context) (bool, error) {
		return b.api.ToggleBookmark(ctx, postID)
	})
}

// # Follows

// Follows tracks whether the viewer follows each author.
type Follows struct {
	*Controller[bool]
	api FollowAPI
}

// NewFollows returns the follow toggle.
func NewFollows(api FollowAPI, gate Gate, nav route.Navigator, logger *slog.Logger, m *metrics.Metrics) *Follows {
	return &Follows{Controller: New[bool]("follow", gate, nav, logger, m), api: api}
}

// Toggle flips whether the viewer follows username.
func (f *Follows) Toggle(ctx context.Context, username string) (bool, error) {
	return f.Do(ctx, username, func(ctx context.Context) (bool, error) {
		return f.api.ToggleFollow(ctx, username)
	})
}
