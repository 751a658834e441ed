// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
)

func newLoginCommand(c *cli) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var err error
			if email, err = c.valueOrPrompt(out, email, "Email: "); err != nil {
				return err
			}
			if password, err = c.valueOrPrompt(out, password, "Password: "); err != nil {
				return err
			}

			user, err := c.app.Account.Login(cmd.Context(), blog.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newRegisterCommand(c *cli) *cobra.Command {
	var req blog.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var err error
			if req.Name, err = c.valueOrPrompt(out, req.Name, "Name: "); err != nil {
				return err
			}
			if req.Email, err = c.valueOrPrompt(out, req.Email, "Email: "); err != nil {
				return err
			}
			if req.Password, err = c.valueOrPrompt(out, req.Password, "Password: "); err != nil {
				return err
			}

			user, err := c.app.Account.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Welcome, %s! You are now logged in.\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Account.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			user, ok := c.app.Session.User()
			if !ok || !c.app.Session.IsAuthenticated() {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}

			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "Role: %s\n", user.Role)

			// Informational only; the backend decides whether the token still works.
			if expiry, ok := c.app.Session.TokenExpiry(); ok {
				now := c.app.Clock.Now()
				if expiry.Before(now) {
					fmt.Fprintf(out, "Token expired %s\n", blog.Relative(expiry, now))
				} else {
					fmt.Fprintf(out, "Token expires in %s\n", expiry.Sub(now).Round(time.Minute))
				}
			}
			return nil
		},
	}
}

func newForgotPasswordCommand(c *cli) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var err error
			if email, err = c.valueOrPrompt(out, email, "Email: "); err != nil {
				return err
			}
			if err := c.app.Account.ForgotPassword(cmd.Context(), email); err != nil {
				return err
			}

			fmt.Fprintln(out, "If an account exists for that email, a reset link is on its way.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newResetPasswordCommand(c *cli) *cobra.Command {
	var form blog.ResetPasswordForm

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using the token from a reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var err error
			if form.NewPassword, err = c.valueOrPrompt(out, form.NewPassword, "New password: "); err != nil {
				return err
			}
			if form.ConfirmPassword, err = c.valueOrPrompt(out, form.ConfirmPassword, "Confirm password: "); err != nil {
				return err
			}

			if err := c.app.Account.ResetPassword(cmd.Context(), form); err != nil {
				return err
			}

			fmt.Fprintf(out, "Password reset. Log in with `%s login`.\n", cmd.Root().Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Token, "token", "", "token from the reset link")
	cmd.Flags().StringVar(&form.NewPassword, "password", "", "new password (prompted when omitted)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "repeat the new password (prompted when omitted)")
	return cmd
}
