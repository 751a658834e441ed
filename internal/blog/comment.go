// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

// Comment is a top-level comment or a reply (ParentID set).
//
// Only top-level comments are paged; replies arrive nested in Replies.
type Comment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
	ParentID    *string   `json:"parentId,omitempty"`
	Replies     []Comment `json:"replies,omitempty"`
}

// IsReply reports whether the comment answers another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}

// CommentRequest is the body of comment create and update calls.
type CommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId,omitempty"`
}
