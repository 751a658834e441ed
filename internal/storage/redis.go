// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/dberr"
)

// Redis is a [Store] backed by a Redis database. Keys are namespaced so that
// the profile can share a Redis with other applications.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an already connected client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, prefix: constants.RedisPrefixStorage}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		return "", dberr.Wrap(err, "get "+key)
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return dberr.Wrap(r.client.Set(ctx, r.prefix+key, value, 0).Err(), "set "+key)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return dberr.Wrap(r.client.Del(ctx, r.prefix+key).Err(), "delete "+key)
}

func (r *Redis) Close() error { return r.client.Close() }
