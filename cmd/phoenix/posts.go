// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/editor"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/route"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

func newPostsCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse, write, and react to posts",
	}

	cmd.AddCommand(
		newPostsListCommand(c),
		newPostsShowCommand(c),
		newPostsCreateCommand(c),
		newPostsEditCommand(c),
		newPostsDeleteCommand(c),
		newPostsLikeCommand(c),
		newPostsBookmarkCommand(c),
		newPostsSavedCommand(c),
		newPostsDraftsCommand(c),
		newPostsTagsCommand(c),
	)
	return cmd
}

// # Reading

func newPostsListCommand(c *cli) *cobra.Command {
	var (
		page                int
		search, tag, sort   string
		trending, following bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first by default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			params := pagination.Params{Page: max(page-1, pagination.FirstPage), Size: constants.PostsPageSize}

			var (
				data pagination.Page[blog.Post]
				err  error
			)
			switch {
			case trending:
				data, err = c.app.Client.TrendingPosts(ctx, params)
			case following:
				if err := c.requireSession(); err != nil {
					return err
				}
				data, err = c.app.Client.FollowingFeed(ctx, params)
			default:
				feed := c.app.Feed
				feed.SetSearch(search)
				feed.SetTag(tag)
				if sort != "" {
					feed.SetSort(sort)
				}
				state, fetchErr := feed.GoTo(ctx, params.Page)
				data, err = state.Data, fetchErr
			}
			if err != nil {
				return apperr.Surface(err, "Failed to load posts")
			}

			printPosts(out, data.Content, c.app.Clock.Now())
			printPageFooter(out, data, "posts")
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().StringVar(&search, "search", "", "search titles and content")
	cmd.Flags().StringVar(&tag, "tag", "", "only posts with this tag")
	cmd.Flags().StringVar(&sort, "sort", "", "newest, oldest, or mostLiked")
	cmd.Flags().BoolVar(&trending, "trending", false, "show trending posts")
	cmd.Flags().BoolVar(&following, "following", false, "show posts from people you follow")
	cmd.MarkFlagsMutuallyExclusive("trending", "following")
	return cmd
}

func newPostsShowCommand(c *cli) *cobra.Command {
	var related bool

	cmd := &cobra.Command{
		Use:   "show <post-id>",
		Short: "Read a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := c.app.Clock.Now()

			post, err := c.app.Client.GetPost(ctx, args[0])
			if err != nil {
				return apperr.Surface(err, "Failed to load post")
			}
			c.app.Likes.SeedPost(post)
			c.app.Bookmarks.SeedPost(post)

			fmt.Fprintln(out, post.Title)
			fmt.Fprintf(out, "by %s · %s · %d min read\n", post.AuthorName, blog.Relative(post.CreatedAt.Time, now), post.ReadingTimeMinutes)
			fmt.Fprintf(out, "%d likes · %d comments · %d views\n", post.LikeCount, post.CommentCount, post.ViewCount)
			if len(post.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %v\n", post.Tags)
			}
			fmt.Fprintln(out)

			if post.Locked() {
				fmt.Fprintf(out, "This is a premium post (%s).\n", formatPrice(post.Price, constants.PriceCurrency))
				fmt.Fprintf(out, "Run `%s pay %s` to unlock it.\n", cmd.Root().Name(), post.ID)
			} else {
				fmt.Fprintln(out, post.Content)
			}

			if !related {
				return nil
			}
			posts, err := c.app.Client.RelatedPosts(ctx, post.ID)
			if err != nil {
				return apperr.Surface(err, "Failed to load related posts")
			}
			fmt.Fprintln(out, "\nRelated")
			printPosts(out, posts, now)
			return nil
		},
	}

	cmd.Flags().BoolVar(&related, "related", false, "also list related posts")
	return cmd
}

func newPostsSavedCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List your bookmarked posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			posts, err := c.app.Client.Bookmarks(cmd.Context())
			if err != nil {
				return apperr.Surface(err, "Failed to load saved posts")
			}
			printPosts(cmd.OutOrStdout(), posts, c.app.Clock.Now())
			return nil
		},
	}
}

func newPostsDraftsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List your unpublished posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			posts, err := c.app.Client.MyDrafts(cmd.Context())
			if err != nil {
				return apperr.Surface(err, "Failed to load drafts")
			}
			printPosts(cmd.OutOrStdout(), posts, c.app.Clock.Now())
			return nil
		},
	}
}

func newPostsTagsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := c.app.Client.Tags(cmd.Context())
			if err != nil {
				return apperr.Surface(err, "Failed to load tags")
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

// # Writing

// postFlags are the editor fields settable from the command line.
type postFlags struct {
	title, content, contentFile, price string
	tags                               []string
	premium, draft, restore, discard   bool
}

func (f *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "post title")
	cmd.Flags().StringVar(&f.content, "content", "", "post content")
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", "read content from a file (- for stdin)")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "tag, repeatable (replaces existing tags)")
	cmd.Flags().BoolVar(&f.premium, "premium", false, "make the post premium")
	cmd.Flags().StringVar(&f.price, "price", "", "premium price in "+constants.PriceCurrency)
	cmd.Flags().BoolVar(&f.draft, "draft", false, "save as draft instead of publishing")
	cmd.Flags().BoolVar(&f.restore, "restore", false, "continue the unsaved draft kept on this device")
	cmd.Flags().BoolVar(&f.discard, "discard", false, "drop the unsaved draft kept on this device")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
	cmd.MarkFlagsMutuallyExclusive("restore", "discard")
}

// apply resolves the local draft offer, then layers the given flags over the
// editor's form.
func (f *postFlags) apply(ctx context.Context, cmd *cobra.Command, ed *editor.Editor) error {
	out := cmd.OutOrStdout()

	if record, ok := ed.Offer(); ok {
		switch {
		case f.restore:
			ed.Restore()
			fmt.Fprintln(out, "Restored your unsaved draft")
		case f.discard:
			if err := ed.Dismiss(ctx); err != nil {
				return apperr.Internal(err)
			}
		default:
			fmt.Fprintf(out, "An unsaved draft %q from %s is kept on this device; use --restore or --discard.\n",
				record.Title, record.SavedAt().Format("Jan 2 15:04"))
		}
	}

	form := ed.Form()
	flags := cmd.Flags()

	if flags.Changed("title") {
		form.Title = f.title
	}
	if flags.Changed("content") {
		form.Content = f.content
	}
	if f.contentFile != "" {
		content, err := readContent(cmd.InOrStdin(), f.contentFile)
		if err != nil {
			return apperr.ValidationError("Could not read " + f.contentFile)
		}
		form.Content = content
	}
	if flags.Changed("premium") {
		form.IsPremium = f.premium
	}
	if flags.Changed("price") {
		form.Price = f.price
	}
	if flags.Changed("tag") {
		form.Tags = []string{}
	}
	ed.Update(form)

	for _, raw := range f.tags {
		if _, err := ed.AddTag(raw); err != nil {
			return err
		}
	}
	return nil
}

func readContent(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// submit sends the form. A failed submit keeps the form on this device so the
// next run can --restore it.
func submit(ctx context.Context, cmd *cobra.Command, ed *editor.Editor, asDraft bool) error {
	out := cmd.OutOrStdout()

	post, err := ed.Submit(ctx, asDraft)
	if err != nil {
		if ed.Changed() && ed.Flush(ctx) == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Your changes are kept on this device; rerun with --restore.")
		}
		return err
	}

	verb := "Published"
	if asDraft {
		verb = "Saved draft"
	}
	fmt.Fprintf(out, "%s %s (%s)\n", verb, post.Title, post.ID)
	return nil
}

func newPostsCreateCommand(c *cli) *cobra.Command {
	var flags postFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.guard(route.Create); err != nil {
				return err
			}
			ctx := cmd.Context()

			ed := editor.OpenNew(ctx, c.app.EditorDeps())
			defer ed.Close()

			if err := flags.apply(ctx, cmd, ed); err != nil {
				return err
			}
			return submit(ctx, cmd, ed, flags.draft)
		},
	}

	flags.register(cmd)
	return cmd
}

func newPostsEditCommand(c *cli) *cobra.Command {
	var flags postFlags

	cmd := &cobra.Command{
		Use:   "edit <post-id>",
		Short: "Change one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.guard(route.EditPost(args[0])); err != nil {
				return err
			}
			ctx := cmd.Context()
			viewer, _ := c.app.Session.User()

			ed, err := editor.OpenEdit(ctx, c.app.EditorDeps(), viewer, args[0])
			if err != nil {
				return err
			}
			defer ed.Close()

			if err := flags.apply(ctx, cmd, ed); err != nil {
				return err
			}
			return submit(ctx, cmd, ed, flags.draft)
		},
	}

	flags.register(cmd)
	return cmd
}

func newPostsDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			if err := c.app.Client.DeletePost(cmd.Context(), args[0]); err != nil {
				return apperr.Surface(err, "Failed to delete post")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// # Reactions

func newPostsLikeCommand(c *cli) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like or unlike a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if status {
				state, err := c.app.Client.Likes(cmd.Context(), args[0])
				if err != nil {
					return apperr.Surface(err, "Failed to load likes")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d likes (liked by you: %t)\n", state.LikeCount, state.LikedByCurrentUser)
				return nil
			}

			state, err := c.app.Likes.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			verb := "Unliked"
			if state.LikedByCurrentUser {
				verb = "Liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s · %d likes\n", verb, state.LikeCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the like counter without changing it")
	return cmd
}

func newPostsBookmarkCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <post-id>",
		Short: "Save or unsave a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := c.app.Bookmarks.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if saved {
				fmt.Fprintln(cmd.OutOrStdout(), "Saved")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Removed from saved")
			}
			return nil
		},
	}
}
