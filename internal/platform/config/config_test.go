// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults applied when nothing is configured.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PHOENIX_STORAGE", "")
	os.Unsetenv("PHOENIX_STORAGE")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, config.StorageSQLite, cfg.Storage)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_StorageRequirements checks cross-field validation for remote stores.
*/
func TestLoad_StorageRequirements(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"redis_without_url", map[string]string{"PHOENIX_STORAGE": "redis"}, true},
		{"redis_with_url", map[string]string{"PHOENIX_STORAGE": "redis", "PHOENIX_REDIS_URL": "redis://localhost:6379/0"}, false},
		{"postgres_without_dsn", map[string]string{"PHOENIX_STORAGE": "postgres"}, true},
		{"unknown_driver", map[string]string{"PHOENIX_STORAGE": "floppy"}, true},
		{"memory", map[string]string{"PHOENIX_STORAGE": "memory"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHOENIX_REDIS_URL", "")
			t.Setenv("PHOENIX_DATABASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestLoad_EnvFile verifies that a .env file is applied and that a missing one is ignored.
*/
func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PHOENIX_API_URL=https://blog.example.com\n"), 0o600))

	t.Setenv("PHOENIX_API_URL", "")
	os.Unsetenv("PHOENIX_API_URL")
	t.Cleanup(func() { os.Unsetenv("PHOENIX_API_URL") })

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), file)
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com", cfg.APIBaseURL)
}
