// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// newTable returns a writer that aligns tab-separated columns.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// printPosts renders posts as a table.
func printPosts(w io.Writer, posts []blog.Post, now time.Time) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts found")
		return
	}

	table := newTable(w)
	fmt.Fprintln(table, "ID\tTITLE\tAUTHOR\tPUBLISHED\tLIKES\tTAGS")
	for _, post := range posts {
		title := post.Title
		switch {
		case post.IsDraft():
			title += " [draft]"
		case post.Locked():
			title += " [premium]"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%d\t%s\n",
			post.ID, title, post.AuthorName, blog.Relative(post.CreatedAt.Time, now),
			post.LikeCount, strings.Join(post.Tags, ", "))
	}
	_ = table.Flush()
}

// printPageFooter renders the server's paging metadata.
func printPageFooter[T any](w io.Writer, page pagination.Page[T], noun string) {
	if page.TotalPages == 0 {
		return
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d %s)\n", page.PageNumber+1, page.TotalPages, page.TotalElements, noun)
}

// formatPrice renders an amount in minor units, e.g. 4900 INR as "49.00 INR".
func formatPrice(minor int64, currency string) string {
	amount := fmt.Sprintf("%d.%02d", minor/100, minor%100)
	if currency == "" {
		return amount
	}
	return amount + " " + currency
}

// printComments renders a comment page with replies indented under their parent.
func printComments(w io.Writer, comments []blog.Comment, now time.Time, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, comment := range comments {
		fmt.Fprintf(w, "%s%s · %s · %s\n", indent, comment.AuthorName, blog.Relative(comment.CreatedAt.Time, now), comment.ID)
		for _, line := range strings.Split(comment.Content, "\n") {
			fmt.Fprintf(w, "%s  %s\n", indent, line)
		}
		printComments(w, comment.Replies, now, depth+1)
	}
}
