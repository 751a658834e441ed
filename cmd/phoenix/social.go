// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
)

func newFollowCommand(c *cli) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow or unfollow an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if status {
				if err := c.requireSession(); err != nil {
					return err
				}
				following, err := c.app.Client.FollowStatus(cmd.Context(), args[0])
				if err != nil {
					return apperr.Surface(err, "Failed to load follow status")
				}
				if following {
					fmt.Fprintf(cmd.OutOrStdout(), "You follow %s\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "You do not follow %s\n", args[0])
				}
				return nil
			}

			following, err := c.app.Follows.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if following {
				fmt.Fprintf(cmd.OutOrStdout(), "Following %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show whether you follow the author without changing it")
	return cmd
}

func newProfileCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <username>",
		Short: "Show an author's profile and posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			now := c.app.Clock.Now()

			profile, err := c.app.Client.Profile(cmd.Context(), args[0])
			if err != nil {
				return apperr.Surface(err, "Failed to load profile")
			}

			fmt.Fprintln(out, profile.Username)
			fmt.Fprintf(out, "Joined %s · %d posts · %d followers · %d following\n",
				blog.Relative(profile.JoinedDate.Time, now), profile.TotalPosts, profile.FollowersCount, profile.FollowingCount)
			if profile.FollowedByCurrentUser {
				fmt.Fprintln(out, "You follow this author")
			}
			fmt.Fprintln(out)
			printPosts(out, profile.Posts, now)
			return nil
		},
	}
}
