// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/session"
)

func newThemeCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or change the colour theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			appearance := c.app.Appearance

			if len(args) == 0 {
				source := "system default"
				if appearance.Explicit() {
					source = "saved preference"
				}
				fmt.Fprintf(out, "%s (%s)\n", appearance.Current(), source)
				return nil
			}

			var theme session.Theme
			switch args[0] {
			case "toggle":
				toggled, err := appearance.Toggle(cmd.Context())
				if err != nil {
					return apperr.Internal(err)
				}
				theme = toggled
			default:
				theme = session.Theme(args[0])
				if !theme.Valid() {
					return apperr.ValidationError("Theme must be dark or light")
				}
				if err := appearance.Set(cmd.Context(), theme); err != nil {
					return apperr.Internal(err)
				}
			}

			fmt.Fprintf(out, "Theme set to %s\n", theme)
			return nil
		},
	}
	return cmd
}
