// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
)

// AdminPosts lists every post, drafts included. Admin only.
func (c *Client) AdminPosts(ctx context.Context) ([]blog.Post, error) {
	return do[[]blog.Post](ctx, c, call{op: "admin.posts", method: http.MethodGet, path: "/api/admin/posts"})
}

// AdminUsers lists every account. Admin only.
func (c *Client) AdminUsers(ctx context.Context) ([]blog.AdminUser, error) {
	return do[[]blog.AdminUser](ctx, c, call{op: "admin.users", method: http.MethodGet, path: "/api/admin/users"})
}

// AdminDeletePost deletes any post. Admin only.
func (c *Client) AdminDeletePost(ctx context.Context, id string) error {
	return c.exec(ctx, call{op: "admin.delete_post", method: http.MethodDelete, path: "/api/admin/posts/" + segment(id)})
}
