// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/route"
)

func newAdminCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderate posts and review accounts (admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.guard(route.Admin); err != nil {
				return err
			}
			ctx := cmd.Context()

			posts, err := c.app.Client.AdminPosts(ctx)
			if err != nil {
				return apperr.Surface(err, "Failed to load posts")
			}
			users, err := c.app.Client.AdminUsers(ctx)
			if err != nil {
				return apperr.Surface(err, "Failed to load users")
			}

			admins := 0
			for _, user := range users {
				if user.Role == constants.RoleAdmin {
					admins++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d posts · %d users (%d admins)\n", len(posts), len(users), admins)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "posts",
			Short: "List every post",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.guard(route.Admin); err != nil {
					return err
				}
				posts, err := c.app.Client.AdminPosts(cmd.Context())
				if err != nil {
					return apperr.Surface(err, "Failed to load posts")
				}
				printPosts(cmd.OutOrStdout(), posts, c.app.Clock.Now())
				return nil
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "List every account",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.guard(route.Admin); err != nil {
					return err
				}
				users, err := c.app.Client.AdminUsers(cmd.Context())
				if err != nil {
					return apperr.Surface(err, "Failed to load users")
				}
				printUsers(cmd, users)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete-post <post-id>",
			Short: "Remove any post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.guard(route.Admin); err != nil {
					return err
				}
				if err := c.app.Client.AdminDeletePost(cmd.Context(), args[0]); err != nil {
					return apperr.Surface(err, "Failed to delete post")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func printUsers(cmd *cobra.Command, users []blog.AdminUser) {
	table := newTable(cmd.OutOrStdout())
	fmt.Fprintln(table, "ID\tNAME\tEMAIL\tROLE\tJOINED")
	for _, user := range users {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.Role, user.CreatedAt.Format("2006-01-02"))
	}
	_ = table.Flush()
}
