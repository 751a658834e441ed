// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/app"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/route"
)

// # Exit Codes

const (
	exitOK      = 0
	exitFailure = 1
	exitCrash   = 70
)

// cli carries what every command needs. The App is opened lazily, once, by the
// root command's pre-run hook.
type cli struct {
	cfg *config.Config
	log *slog.Logger
	in  *bufio.Reader

	// clock overrides the wall clock (tests).
	clock clock.Clock

	app *app.App

	// started is set once cobra has parsed flags and arguments and handed
	// control to a command. Failures before that are usage mistakes.
	started bool
}

// execute runs one command line and returns the process exit code.
//
// It is the last line of defence: a panic anywhere below is turned into a
// diagnostic panel instead of a raw stack dump.
func execute(ctx context.Context, c *cli, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("command_panicked", slog.Any("panic", r))
			printDiagnostic(stderr, fmt.Sprint(r), debug.Stack())
			code = exitCrash
		}
	}()
	defer c.close()

	root := newRootCommand(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(c.in)
	c.started = false

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		if !c.started && apperr.As(err) == nil {
			printUsageError(stderr, cmd, err)
		} else {
			printError(stderr, err)
		}
		return exitFailure
	}
	return exitOK
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		c.log.Warn("app_close_failed", slog.Any("error", err))
	}
	c.app = nil
}

// newRootCommand assembles the command tree.
func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Read, write, and discuss posts on a Phoenix blog",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.started = true
			if c.app != nil {
				return nil
			}
			a, err := app.New(cmd.Context(), c.cfg, c.log, app.Options{Clock: c.clock})
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}

	root.AddCommand(
		newLoginCommand(c),
		newRegisterCommand(c),
		newLogoutCommand(c),
		newWhoamiCommand(c),
		newForgotPasswordCommand(c),
		newResetPasswordCommand(c),
		newThemeCommand(c),
		newPostsCommand(c),
		newCommentsCommand(c),
		newFollowCommand(c),
		newProfileCommand(c),
		newSeriesCommand(c),
		newNotificationsCommand(c),
		newPayCommand(c),
		newAdminCommand(c),
		newServeCommand(c),
	)
	return root
}

// # Guards

// requireSession fails with UNAUTHENTICATED while logged out.
func (c *cli) requireSession() error {
	if !c.app.Session.IsAuthenticated() {
		return apperr.Unauthenticated()
	}
	return nil
}

// guard applies the client-side guard of path. The backend still enforces
// access on every call.
func (c *cli) guard(path string) error {
	redirect, ok := route.Check(path, c.app.Session)
	if ok {
		return nil
	}

	c.app.Nav.Navigate(redirect)
	if redirect == route.Login {
		return apperr.Unauthenticated()
	}
	return apperr.Forbidden("You do not have permission to access this page.")
}

// # Prompts

// prompt writes label and reads one line from stdin. EOF yields "".
func (c *cli) prompt(w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// valueOrPrompt returns value, or asks for it when empty.
func (c *cli) valueOrPrompt(w io.Writer, value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return c.prompt(w, label)
}

// # Rendering

// printError renders a command failure. Known errors print their message;
// anything else gets the diagnostic panel.
func printError(w io.Writer, err error) {
	ae := apperr.As(err)
	if ae == nil || ae.Code == "INTERNAL_ERROR" {
		printDiagnostic(w, err.Error(), nil)
		return
	}

	fmt.Fprintf(w, "Error: %s\n", ae.Message)
	for _, detail := range ae.Details {
		fmt.Fprintf(w, "  %s: %s\n", detail.Field, detail.Message)
	}
	if ae.Code == "UNAUTHENTICATED" {
		fmt.Fprintf(w, "Run `%s login` first.\n", constants.AppName)
	}
}

// printUsageError renders a command line cobra rejected (unknown command or
// flag, wrong argument count) as a plain error with a pointer to --help.
func printUsageError(w io.Writer, cmd *cobra.Command, err error) {
	path := constants.AppName
	if cmd != nil {
		path = cmd.CommandPath()
	}
	fmt.Fprintf(w, "Error: %s\n", err)
	fmt.Fprintf(w, "Run `%s --help` for usage.\n", path)
}

// printDiagnostic prints the panel shown for unexpected failures.
func printDiagnostic(w io.Writer, summary string, stack []byte) {
	rule := strings.Repeat("─", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, " %s hit an unexpected error\n", constants.AppName)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, " version  %s\n", constants.AppVersion)
	fmt.Fprintf(w, " runtime  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, " error    %s\n", summary)
	if len(stack) > 0 {
		fmt.Fprintln(w, rule)
		_, _ = w.Write(stack)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, " Set PHOENIX_DEBUG=true for detailed logs and include them when reporting.")
}
