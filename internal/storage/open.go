// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/platform/config"
	"github.com/taibuivan/phoenix/internal/platform/migration"
	"github.com/taibuivan/phoenix/internal/platform/postgres"
	"github.com/taibuivan/phoenix/internal/platform/redis"
	"github.com/taibuivan/phoenix/internal/platform/sec"
)

// Open builds the [Store] selected by cfg.
//
// # Flow
//  1. Connect the chosen backend (migrating PostgreSQL first).
//  2. Wrap it with [Sealed] when a storage secret is configured.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Storage {
	case config.StorageMemory:
		store = NewMemory()

	case config.StorageSQLite:
		store, err = OpenSQLite(ctx, cfg.SQLitePath, logger)

	case config.StorageRedis:
		client, connErr := redis.NewClient(ctx, cfg.RedisURL, logger)
		if connErr != nil {
			return nil, connErr
		}
		store = NewRedis(client)

	case config.StoragePostgres:
		if migErr := migration.RunUp(cfg.DatabaseURL, Migrations, MigrationsDir, logger); migErr != nil {
			return nil, migErr
		}
		pool, connErr := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
		if connErr != nil {
			return nil, connErr
		}
		store = NewPostgres(pool)

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage)
	}

	if err != nil {
		return nil, err
	}

	if cfg.StorageSecret == "" {
		logger.Debug("storage_opened", slog.String("driver", cfg.Storage), slog.Bool("sealed", false))
		return store, nil
	}

	sealer, err := sec.NewSealer(cfg.StorageSecret)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Debug("storage_opened", slog.String("driver", cfg.Storage), slog.Bool("sealed", true))
	return NewSealed(store, sealer), nil
}
