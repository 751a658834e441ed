// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the shared page types of the blogging API.
//
// # Overview
//
// The backend pages every long list with a 0-based page index and a fixed
// size, and answers with a single immutable page snapshot. The client holds
// exactly one page at a time and treats the server's boundary fields as
// ground truth; nothing here recomputes them.
package pagination

import (
	"net/url"
	"strconv"
)

// FirstPage is the index of the first page (0-indexed).
const FirstPage = 0

// Page is one page of a larger server-side result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Empty returns the page shown before anything has been fetched. It reports
// both First and Last so that navigation is disabled.
func Empty[T any]() Page[T] {
	return Page[T]{Content: []T{}, First: true, Last: true}
}

// Params holds the page index and size of a list request.
type Params struct {
	Page int
	Size int
}

// Encode writes page and size into q.
func (p Params) Encode(q url.Values) {
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
}

// Query returns the parameters as a URL query.
func (p Params) Query() url.Values {
	q := url.Values{}
	p.Encode(q)
	return q
}
