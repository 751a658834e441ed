// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import "strings"

// # Post Status

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// # Sort Orders

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortMostLiked = "mostLiked"
)

// Sorts lists the orders the feed accepts.
var Sorts = []string{SortNewest, SortOldest, SortMostLiked}

// NormalizeSort maps user input onto one of [Sorts], case-insensitively.
// Unknown values fall back to [SortNewest].
func NormalizeSort(sort string) string {
	for _, known := range Sorts {
		if strings.EqualFold(sort, known) {
			return known
		}
	}
	return SortNewest
}

// Post is a blog article as seen by the current viewer.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
	Status      string    `json:"status,omitempty"`
	Tags        []string  `json:"tags"`

	// Counters
	CommentCount       int   `json:"commentCount"`
	LikeCount          int64 `json:"likeCount"`
	ViewCount          int64 `json:"viewCount"`
	ReadingTimeMinutes int   `json:"readingTimeMinutes"`

	// Paywall; Price is in minor currency units.
	IsPremium bool  `json:"isPremium"`
	Price     int64 `json:"price"`

	// Per-viewer flags
	LikedByCurrentUser      bool `json:"likedByCurrentUser"`
	BookmarkedByCurrentUser bool `json:"bookmarkedByCurrentUser"`
	PaidByCurrentUser       bool `json:"paidByCurrentUser"`
	Author                  bool `json:"author"`
}

// IsDraft reports whether the post is unpublished.
func (p Post) IsDraft() bool {
	return p.Status == StatusDraft
}

// Locked reports whether the viewer must pay before reading the full content.
func (p Post) Locked() bool {
	return p.IsPremium && !p.PaidByCurrentUser && !p.Author
}

// PostRequest is the body of POST /api/posts and PUT /api/posts/{id}.
//
// Tags is always encoded as an array, never null.
type PostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	IsPremium   bool     `json:"isPremium"`
	Price       int64    `json:"price"`
	Tags        []string `json:"tags"`
	SaveAsDraft bool     `json:"saveAsDraft,omitempty"`
}

// ListFilter is the set of filters of the post feed.
type ListFilter struct {
	Search string
	Tag    string
	Sort   string
}

// LikeState is the backend's authoritative like counter for one post.
type LikeState struct {
	LikeCount          int64 `json:"likeCount"`
	LikedByCurrentUser bool  `json:"likedByCurrentUser"`
}
