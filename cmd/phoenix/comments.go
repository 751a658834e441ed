// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
)

func newCommentsCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and write comments on a post",
	}

	cmd.AddCommand(
		newCommentsListCommand(c),
		newCommentsAddCommand(c),
		newCommentsReplyCommand(c),
		newCommentsEditCommand(c),
		newCommentsDeleteCommand(c),
	)
	return cmd
}

func newCommentsListCommand(c *cli) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list <post-id>",
		Short: "List the comments of a post, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			state, err := c.app.Comments(args[0]).GoTo(cmd.Context(), page-1)
			if err != nil {
				return apperr.Surface(err, state.Message)
			}

			if len(state.Data.Content) == 0 {
				fmt.Fprintln(out, "No comments yet")
				return nil
			}
			printComments(out, state.Data.Content, c.app.Clock.Now(), 0)
			printPageFooter(out, state.Data, "comments")
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	return cmd
}

// commentCommand builds a command that validates content, requires a session,
// and runs send with the positional arguments.
func commentCommand(c *cli, use, short string, nargs int, failure string, send func(cmd *cobra.Command, args []string) (blog.Comment, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			if err := blog.ValidateComment(args[nargs-1]); err != nil {
				return err
			}

			comment, err := send(cmd, args)
			if err != nil {
				return apperr.Surface(err, failure)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment %s saved\n", comment.ID)
			return nil
		},
	}
}

func newCommentsAddCommand(c *cli) *cobra.Command {
	return commentCommand(c, "add <post-id> <content>", "Comment on a post", 2, "Failed to add comment",
		func(cmd *cobra.Command, args []string) (blog.Comment, error) {
			return c.app.Client.AddComment(cmd.Context(), args[0], args[1])
		})
}

func newCommentsReplyCommand(c *cli) *cobra.Command {
	return commentCommand(c, "reply <post-id> <comment-id> <content>", "Reply to a comment", 3, "Failed to post reply",
		func(cmd *cobra.Command, args []string) (blog.Comment, error) {
			return c.app.Client.Reply(cmd.Context(), args[0], args[1], args[2])
		})
}

func newCommentsEditCommand(c *cli) *cobra.Command {
	return commentCommand(c, "edit <post-id> <comment-id> <content>", "Change one of your comments", 3, "Failed to update comment",
		func(cmd *cobra.Command, args []string) (blog.Comment, error) {
			return c.app.Client.UpdateComment(cmd.Context(), args[0], args[1], args[2])
		})
}

func newCommentsDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id> <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			if err := c.app.Client.DeleteComment(cmd.Context(), args[0], args[1]); err != nil {
				return apperr.Surface(err, "Failed to delete comment")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Comment deleted")
			return nil
		},
	}
}
