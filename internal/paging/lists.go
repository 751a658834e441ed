// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paging

import (
	"context"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// FeedAPI loads pages of the post feed.
type FeedAPI interface {
	ListPosts(ctx context.Context, filter blog.ListFilter, params pagination.Params) (pagination.Page[blog.Post], error)
}

// CommentAPI loads pages of a post's comments.
type CommentAPI interface {
	ListComments(ctx context.Context, postID string, params pagination.Params) (pagination.Page[blog.Comment], error)
}

// InboxAPI loads pages of the viewer's notifications.
type InboxAPI interface {
	Notifications(ctx context.Context, params pagination.Params) (pagination.Page[blog.Notification], error)
}

// NewFeed returns the home feed list, newest first.
func NewFeed(api FeedAPI, logger *slog.Logger) *List[blog.Post] {
	return New[blog.Post](api.ListPosts, Options{
		Size:         constants.PostsPageSize,
		ErrorMessage: "Failed to load posts",
		InitialSort:  constants.DefaultSort,
		Logger:       logger,
	})
}

// NewComments returns the top-level comment list of postID.
func NewComments(api CommentAPI, postID string, logger *slog.Logger) *List[blog.Comment] {
	fetch := func(ctx context.Context, _ blog.ListFilter, params pagination.Params) (pagination.Page[blog.Comment], error) {
		return api.ListComments(ctx, postID, params)
	}
	return New[blog.Comment](fetch, Options{
		Size:         constants.CommentsPageSize,
		ErrorMessage: "Failed to load comments",
		Logger:       logger,
	})
}

// NewInbox returns the notification list.
func NewInbox(api InboxAPI, logger *slog.Logger) *List[blog.Notification] {
	fetch := func(ctx context.Context, _ blog.ListFilter, params pagination.Params) (pagination.Page[blog.Notification], error) {
		return api.Notifications(ctx, params)
	}
	return New[blog.Notification](fetch, Options{
		Size:         constants.NotificationsPageSize,
		ErrorMessage: "Failed to load notifications",
		Logger:       logger,
	})
}
