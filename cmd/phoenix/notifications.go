// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
)

func newNotificationsCommand(c *cli) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "List your notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			now := c.app.Clock.Now()

			state, err := c.app.Inbox().GoTo(cmd.Context(), page-1)
			if err != nil {
				return apperr.Surface(err, state.Message)
			}

			if len(state.Data.Content) == 0 {
				fmt.Fprintln(out, "No notifications")
				return nil
			}

			table := newTable(out)
			fmt.Fprintln(table, "ID\t\tWHEN\tMESSAGE")
			for _, n := range state.Data.Content {
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", n.ID, unreadMark(n), blog.Relative(n.CreatedAt.Time, now), n.Message)
			}
			_ = table.Flush()
			printPageFooter(out, state.Data, "notifications")
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.AddCommand(
		newNotificationsCountCommand(c),
		newNotificationsReadCommand(c),
		newNotificationsReadAllCommand(c),
	)
	return cmd
}

func unreadMark(n blog.Notification) string {
	if n.Read {
		return ""
	}
	return "●"
}

func newNotificationsCountCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the number of unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			count, err := c.app.Unread.Refresh(cmd.Context())
			if err != nil {
				return apperr.Surface(err, "Failed to load notifications")
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func newNotificationsReadCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := c.app.Unread.MarkRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked as read · %d unread\n", count)
			return nil
		},
	}
}

func newNotificationsReadAllCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Unread.MarkAllRead(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All notifications marked as read")
			return nil
		},
	}
}
