// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
)

func seriesPath(id string) string { return "/api/series/" + segment(id) }

// CreateSeries creates a series owned by the current user.
func (c *Client) CreateSeries(ctx context.Context, req blog.SeriesRequest) (blog.Series, error) {
	return do[blog.Series](ctx, c, call{op: "series.create", method: http.MethodPost, path: "/api/series", body: req})
}

// MySeries lists the current user's series.
func (c *Client) MySeries(ctx context.Context) ([]blog.Series, error) {
	return do[[]blog.Series](ctx, c, call{op: "series.mine", method: http.MethodGet, path: "/api/series/my"})
}

// GetSeries fetches one series.
func (c *Client) GetSeries(ctx context.Context, id string) (blog.Series, error) {
	return do[blog.Series](ctx, c, call{op: "series.get", method: http.MethodGet, path: seriesPath(id)})
}

// UpdateSeries renames or re-describes a series.
func (c *Client) UpdateSeries(ctx context.Context, id string, req blog.SeriesRequest) (blog.Series, error) {
	return do[blog.Series](ctx, c, call{op: "series.update", method: http.MethodPut, path: seriesPath(id), body: req})
}

// DeleteSeries deletes a series; its posts are kept.
func (c *Client) DeleteSeries(ctx context.Context, id string) error {
	return c.exec(ctx, call{op: "series.delete", method: http.MethodDelete, path: seriesPath(id)})
}

// SeriesPosts lists the posts of a series in order.
func (c *Client) SeriesPosts(ctx context.Context, id string) ([]blog.Post, error) {
	return do[[]blog.Post](ctx, c, call{op: "series.posts", method: http.MethodGet, path: seriesPath(id) + "/posts"})
}
