// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first (via 'joho/godotenv') so that a developer machine can keep its
backend URL and storage choice next to the binary; real environment variables
always win over the file.

Usage:

	cfg, err := config.Load(".env")
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (storage, apiclient) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Storage Drivers

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Phoenix client.
type Config struct {

	// Backend
	APIBaseURL  string        `env:"PHOENIX_API_URL"      envDefault:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"PHOENIX_HTTP_TIMEOUT" envDefault:"0s"`

	// Runtime
	Environment string `env:"PHOENIX_ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"PHOENIX_DEBUG"       envDefault:"false"`

	// Durable client storage
	Storage       string `env:"PHOENIX_STORAGE"        envDefault:"sqlite"`
	SQLitePath    string `env:"PHOENIX_SQLITE_PATH"    envDefault:"./phoenix.db"`
	RedisURL      string `env:"PHOENIX_REDIS_URL"`
	DatabaseURL   string `env:"PHOENIX_DATABASE_URL"`
	StorageSecret string `env:"PHOENIX_STORAGE_SECRET"`

	// Appearance
	PreferDark bool `env:"PHOENIX_PREFER_DARK" envDefault:"false"`

	// Local gateway
	GatewayPort  string `env:"PHOENIX_GATEWAY_PORT" envDefault:"5173"`
	ExtraOrigins string `env:"PHOENIX_EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// Each file in envFiles is loaded into the process environment first; missing
// files are skipped silently.
func Load(envFiles ...string) (*Config, error) {

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field requirements that struct tags cannot express.
func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite:
		return nil
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("config: PHOENIX_REDIS_URL is required for redis storage")
		}
		return nil
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: PHOENIX_DATABASE_URL is required for postgres storage")
		}
		return nil
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage)
	}
}

// IsDevelopment reports whether the client is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the client is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
