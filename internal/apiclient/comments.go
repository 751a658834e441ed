// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/pkg/pagination"
	"github.com/taibuivan/phoenix/pkg/pointer"
)

// CommentPage is one page of top-level comments.
type CommentPage = pagination.Page[blog.Comment]

func commentsPath(postID string) string {
	return "/api/posts/" + segment(postID) + "/comments"
}

// ListComments fetches one page of a post's top-level comments, replies nested.
func (c *Client) ListComments(ctx context.Context, postID string, params pagination.Params) (CommentPage, error) {
	return do[CommentPage](ctx, c, call{op: "comments.list", method: http.MethodGet, path: commentsPath(postID), query: params.Query()})
}

// AddComment posts a top-level comment.
func (c *Client) AddComment(ctx context.Context, postID, content string) (blog.Comment, error) {
	return do[blog.Comment](ctx, c, call{
		op: "comments.create", method: http.MethodPost, path: commentsPath(postID),
		body: blog.CommentRequest{Content: content},
	})
}

// Reply posts an answer to an existing comment.
func (c *Client) Reply(ctx context.Context, postID, parentID, content string) (blog.Comment, error) {
	return do[blog.Comment](ctx, c, call{
		op: "comments.reply", method: http.MethodPost, path: commentsPath(postID),
		body: blog.CommentRequest{Content: content, ParentID: pointer.To(parentID)},
	})
}

// UpdateComment replaces the content of the user's own comment.
func (c *Client) UpdateComment(ctx context.Context, postID, commentID, content string) (blog.Comment, error) {
	return do[blog.Comment](ctx, c, call{
		op: "comments.update", method: http.MethodPut, path: commentsPath(postID) + "/" + segment(commentID),
		body: blog.CommentRequest{Content: content},
	})
}

// DeleteComment deletes the user's own comment.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) error {
	return c.exec(ctx, call{op: "comments.delete", method: http.MethodDelete, path: commentsPath(postID) + "/" + segment(commentID)})
}
