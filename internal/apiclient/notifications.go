// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// NotificationPage is one page of notifications.
type NotificationPage = pagination.Page[blog.Notification]

// The notification endpoints answer without the data envelope.

// Notifications fetches one page of the user's notifications, newest first.
func (c *Client) Notifications(ctx context.Context, params pagination.Params) (NotificationPage, error) {
	return do[NotificationPage](ctx, c, call{
		op: "notifications.list", method: http.MethodGet, path: "/api/notifications",
		query: params.Query(), bare: true,
	})
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	body, err := do[blog.UnreadCount](ctx, c, call{
		op: "notifications.unread", method: http.MethodGet, path: "/api/notifications/unread-count", bare: true,
	})
	return body.Count, err
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.exec(ctx, call{
		op: "notifications.read", method: http.MethodPut, path: "/api/notifications/" + segment(id) + "/read", bare: true,
	})
}

// MarkAllRead marks every notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.exec(ctx, call{op: "notifications.read_all", method: http.MethodPut, path: "/api/notifications/read-all", bare: true})
}
