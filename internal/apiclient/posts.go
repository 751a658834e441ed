// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// PostPage is one page of the feed.
type PostPage = pagination.Page[blog.Post]

// ListPosts fetches one page of the feed with the given filters.
// Empty search and tag are omitted; an empty sort is sent as "newest".
func (c *Client) ListPosts(ctx context.Context, filter blog.ListFilter, params pagination.Params) (PostPage, error) {
	query := params.Query()
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Tag != "" {
		query.Set("tag", filter.Tag)
	}
	query.Set("sort", blog.NormalizeSort(filter.Sort))

	return do[PostPage](ctx, c, call{op: "posts.list", method: http.MethodGet, path: "/api/posts", query: query})
}

// GetPost fetches one post as seen by the current viewer.
func (c *Client) GetPost(ctx context.Context, id string) (blog.Post, error) {
	return do[blog.Post](ctx, c, call{op: "posts.get", method: http.MethodGet, path: "/api/posts/" + segment(id)})
}

// CreatePost publishes (or, with SaveAsDraft, stores) a new post.
func (c *Client) CreatePost(ctx context.Context, req blog.PostRequest) (blog.Post, error) {
	return do[blog.Post](ctx, c, call{op: "posts.create", method: http.MethodPost, path: "/api/posts", body: req})
}

// UpdatePost replaces the editable fields of a post.
func (c *Client) UpdatePost(ctx context.Context, id string, req blog.PostRequest) (blog.Post, error) {
	return do[blog.Post](ctx, c, call{op: "posts.update", method: http.MethodPut, path: "/api/posts/" + segment(id), body: req})
}

// DeletePost deletes a post owned by the current user.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.exec(ctx, call{op: "posts.delete", method: http.MethodDelete, path: "/api/posts/" + segment(id)})
}

// TrendingPosts fetches one page of the trending list.
func (c *Client) TrendingPosts(ctx context.Context, params pagination.Params) (PostPage, error) {
	return do[PostPage](ctx, c, call{op: "posts.trending", method: http.MethodGet, path: "/api/posts/trending", query: params.Query()})
}

// FollowingFeed fetches one page of posts by authors the user follows.
func (c *Client) FollowingFeed(ctx context.Context, params pagination.Params) (PostPage, error) {
	return do[PostPage](ctx, c, call{op: "posts.following", method: http.MethodGet, path: "/api/posts/following", query: params.Query()})
}

// RelatedPosts lists posts sharing tags with the given one.
func (c *Client) RelatedPosts(ctx context.Context, id string) ([]blog.Post, error) {
	return do[[]blog.Post](ctx, c, call{op: "posts.related", method: http.MethodGet, path: "/api/posts/" + segment(id) + "/related"})
}

// MyDrafts lists the current user's unpublished posts.
func (c *Client) MyDrafts(ctx context.Context) ([]blog.Post, error) {
	return do[[]blog.Post](ctx, c, call{op: "posts.drafts", method: http.MethodGet, path: "/api/posts/my-drafts"})
}

// Tags lists every tag in use.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	return do[[]string](ctx, c, call{op: "tags.list", method: http.MethodGet, path: "/api/tags"})
}
