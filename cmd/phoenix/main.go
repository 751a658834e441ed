// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command phoenix is the command line front end of the Phoenix blogging client.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stderr, so command output stays clean).
//  2. Load configuration from the environment and an optional .env file.
//  3. Install signal handling so long-running commands stop gracefully.
//  4. Execute the requested command.
//
// Wiring of storage, session, and controllers happens in [app.New], once per
// invocation.
package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/constants"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(os.Stderr, slog.LevelWarn)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load(".env")
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(os.Stderr, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	// ── 3. Signals ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	// ── 4. Command ────────────────────────────────────────────────────────
	code := execute(ctx, &cli{
		cfg: cfg,
		log: log,
		in:  bufio.NewReader(os.Stdin),
	}, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// newLogger returns the JSON logger every command logs through.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. Command failures are returned and rendered
// by [execute].
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
