// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite3" database/sql driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/taibuivan/phoenix/internal/platform/dberr"
)

//go:embed schema_sqlite.sql
var sqliteSchema string

// SQLite is a [Store] kept in a single SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema. The special path ":memory:" opens a private in-memory database.
//
// The WAL journal and busy timeout are tuning only: when SQLite refuses them
// the store still opens and the refusal is logged at debug level.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("storage: create directory for %s: %w", path, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite %s: %w", path, err)
	}

	// One writer; a second connection to ":memory:" would see another database.
	db.SetMaxOpenConns(1)

	var mode string
	if err := db.QueryRowContext(ctx, `PRAGMA journal_mode=WAL;`).Scan(&mode); err != nil {
		logger.DebugContext(ctx, "sqlite_pragma_failed", slog.String("pragma", "journal_mode"), slog.Any("error", err))
	} else if !strings.EqualFold(mode, "wal") {
		logger.DebugContext(ctx, "sqlite_pragma_ignored", slog.String("pragma", "journal_mode"), slog.String("mode", mode))
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout=3000;`); err != nil {
		logger.DebugContext(ctx, "sqlite_pragma_failed", slog.String("pragma", "busy_timeout"), slog.Any("error", err))
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: apply sqlite schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM client_storage WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", dberr.Wrap(err, "get "+key)
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	return dberr.Wrap(err, "set "+key)
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client_storage WHERE key = ?`, key)
	return dberr.Wrap(err, "delete "+key)
}

func (s *SQLite) Close() error { return s.db.Close() }
