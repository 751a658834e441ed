// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
)

// # Likes

// ToggleLike flips the viewer's like and returns the authoritative counter.
func (c *Client) ToggleLike(ctx context.Context, postID string) (blog.LikeState, error) {
	return do[blog.LikeState](ctx, c, call{op: "likes.toggle", method: http.MethodPost, path: "/api/posts/" + segment(postID) + "/like"})
}

// Likes reads the like counter without changing it.
func (c *Client) Likes(ctx context.Context, postID string) (blog.LikeState, error) {
	return do[blog.LikeState](ctx, c, call{op: "likes.get", method: http.MethodGet, path: "/api/posts/" + segment(postID) + "/likes"})
}

// # Bookmarks

// ToggleBookmark flips the viewer's bookmark and returns the new state.
func (c *Client) ToggleBookmark(ctx context.Context, postID string) (bool, error) {
	return do[bool](ctx, c, call{op: "bookmarks.toggle", method: http.MethodPost, path: "/api/bookmarks/" + segment(postID)})
}

// Bookmarks lists the viewer's saved posts.
func (c *Client) Bookmarks(ctx context.Context) ([]blog.Post, error) {
	return do[[]blog.Post](ctx, c, call{op: "bookmarks.list", method: http.MethodGet, path: "/api/bookmarks"})
}

// # Users

// Profile fetches a user's public profile.
func (c *Client) Profile(ctx context.Context, username string) (blog.Profile, error) {
	return do[blog.Profile](ctx, c, call{op: "users.profile", method: http.MethodGet, path: "/api/users/" + segment(username)})
}

// ToggleFollow flips whether the viewer follows username and returns the new state.
func (c *Client) ToggleFollow(ctx context.Context, username string) (bool, error) {
	return do[bool](ctx, c, call{op: "users.follow", method: http.MethodPost, path: "/api/users/" + segment(username) + "/follow"})
}

// FollowStatus reports whether the viewer follows username.
func (c *Client) FollowStatus(ctx context.Context, username string) (bool, error) {
	return do[bool](ctx, c, call{op: "users.follow_status", method: http.MethodGet, path: "/api/users/" + segment(username) + "/follow-status"})
}
