// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/validate"
	"github.com/taibuivan/phoenix/internal/route"
)

func newSeriesCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Browse and manage post series",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a series and its posts",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()
				c.app.Nav.Navigate(route.Series(args[0]))

				series, err := c.app.Client.GetSeries(ctx, args[0])
				if err != nil {
					return apperr.Surface(err, "Failed to load series")
				}
				posts, err := c.app.Client.SeriesPosts(ctx, args[0])
				if err != nil {
					return apperr.Surface(err, "Failed to load series")
				}

				fmt.Fprintln(out, series.Name)
				if series.Description != "" {
					fmt.Fprintln(out, series.Description)
				}
				fmt.Fprintf(out, "by %s · %d posts\n\n", series.AuthorName, series.PostCount)
				printPosts(out, posts, c.app.Clock.Now())
				return nil
			},
		},
		&cobra.Command{
			Use:   "mine",
			Short: "List your series",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.requireSession(); err != nil {
					return err
				}

				list, err := c.app.Client.MySeries(cmd.Context())
				if err != nil {
					return apperr.Surface(err, "Failed to load series")
				}
				printSeries(cmd, list)
				return nil
			},
		},
		newSeriesCreateCommand(c),
		newSeriesUpdateCommand(c),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete one of your series (its posts are kept)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireSession(); err != nil {
					return err
				}
				if err := c.app.Client.DeleteSeries(cmd.Context(), args[0]); err != nil {
					return apperr.Surface(err, "Failed to delete series")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted series %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newSeriesCreateCommand(c *cli) *cobra.Command {
	var input blog.SeriesRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a new series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			var err error
			if input.Name, err = c.valueOrPrompt(cmd.OutOrStdout(), input.Name, "Name"); err != nil {
				return err
			}
			if err := validateSeries(input); err != nil {
				return err
			}

			series, err := c.app.Client.CreateSeries(cmd.Context(), input)
			if err != nil {
				return apperr.Surface(err, "Failed to create series")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created series %s (%s)\n", series.Name, series.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "series name")
	cmd.Flags().StringVar(&input.Description, "description", "", "short description")
	return cmd
}

func newSeriesUpdateCommand(c *cli) *cobra.Command {
	var input blog.SeriesRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a series or change its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			current, err := c.app.Client.GetSeries(cmd.Context(), args[0])
			if err != nil {
				return apperr.Surface(err, "Failed to load series")
			}
			if !cmd.Flags().Changed("name") {
				input.Name = current.Name
			}
			if !cmd.Flags().Changed("description") {
				input.Description = current.Description
			}
			if err := validateSeries(input); err != nil {
				return err
			}

			series, err := c.app.Client.UpdateSeries(cmd.Context(), args[0], input)
			if err != nil {
				return apperr.Surface(err, "Failed to update series")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved series %s\n", series.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "new name")
	cmd.Flags().StringVar(&input.Description, "description", "", "new description")
	return cmd
}

func validateSeries(input blog.SeriesRequest) error {
	v := &validate.Validator{}
	return v.Required("name", input.Name).ErrWith("Series name is required")
}

func printSeries(cmd *cobra.Command, list []blog.Series) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No series yet.")
		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "ID\tNAME\tPOSTS")
	for _, series := range list {
		fmt.Fprintf(table, "%s\t%s\t%d\n", series.ID, series.Name, series.PostCount)
	}
	table.Flush()
}
