// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/phoenix/internal/platform/dberr"
)

// Migrations holds the PostgreSQL schema, applied with golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside [Migrations].
const MigrationsDir = "migrations"

// Postgres is a [Store] backed by a PostgreSQL table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an already connected pool. The schema must be migrated.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx, `SELECT value FROM client_storage WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", dberr.Wrap(err, "get "+key)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO client_storage (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	return dberr.Wrap(err, "set "+key)
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM client_storage WHERE key = $1`, key)
	return dberr.Wrap(err, "delete "+key)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
