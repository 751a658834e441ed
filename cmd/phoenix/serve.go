// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/platform/constants"
)

func newServeCommand(c *cli) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local gateway for the browser front end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := c.log

			if cmd.Flags().Changed("port") {
				c.app.Config.GatewayPort = port
			}

			// ── 1. Background polling ─────────────────────────────────────
			c.app.Unread.Start(ctx)

			// ── 2. HTTP Server ────────────────────────────────────────────
			server := c.app.Gateway(ctx)

			serverErr := make(chan error, 1)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// ── 3. Graceful Shutdown ──────────────────────────────────────
			// Block until a signal cancels ctx or the listener fails.
			select {
			case <-ctx.Done():
				log.Info("shutdown_signal_received")
			case err := <-serverErr:
				log.Error("gateway_startup_error", slog.Any("error", err))
				return err
			}

			shutdownTimeout := constants.ShutdownTimeout
			log.Info("gateway_shutting_down", slog.Duration("timeout", shutdownTimeout))

			if err := server.Shutdown(shutdownTimeout); err != nil {
				log.Error("shutdown_error", slog.Any("error", err))
				return err
			}

			log.Info("gateway_stopped_cleanly")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PHOENIX_GATEWAY_PORT)")
	return cmd
}
