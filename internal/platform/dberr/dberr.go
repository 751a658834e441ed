// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between the "no such row" signals of the
// different storage drivers and the single absent-key error the client uses.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Wrap classifies a driver error.
//
// Absent rows from pgx, database/sql, and Redis all become [ErrNotFound]; other
// failures are annotated with action and returned for logging.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, redis.Nil) {
		return ErrNotFound
	}

	return fmt.Errorf("storage: %s: %w", action, err)
}
