package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.ServerPort)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
		assert.Equal(t, BackendMemory, cfg.StorageBackend)
		assert.True(t, cfg.SeedData)
		assert.Equal(t, DriverBolt, cfg.ObjectStoreDriver)
		assert.Equal(t, "./uploads", cfg.UploadDir)
		assert.Equal(t, 5, cfg.UploadMaxFiles)
		assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
		assert.Equal(t, int32(10), cfg.DBMaxConns)
		assert.Equal(t, 24*time.Hour, cfg.AuthTokenTTL)
		assert.Empty(t, cfg.AuthTokenSecret)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{
			"SERVER_PORT":          "9090",
			"STORAGE_BACKEND":      "Postgres",
			"DATABASE_URL":         "postgres://u:p@localhost:5432/totalenc?sslmode=disable",
			"DB_MAX_CONNS":         "20",
			"DB_MIN_CONNS":         "2",
			"DB_MAX_CONN_LIFETIME": "2h",
			"SEED_DATA":            "false",
			"UPLOAD_MAX_FILES":     "3",
			"AUTH_TOKEN_SECRET":    "s3cret",
			"AUTH_TOKEN_TTL":       "15m",
		})
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, BackendPostgres, cfg.StorageBackend)
		assert.Equal(t, int32(20), cfg.DBMaxConns)
		assert.Equal(t, int32(2), cfg.DBMinConns)
		assert.Equal(t, 2*time.Hour, cfg.DBMaxConnLifetime)
		assert.False(t, cfg.SeedData)
		assert.Equal(t, 3, cfg.UploadMaxFiles)
		assert.Equal(t, "s3cret", cfg.AuthTokenSecret)
		assert.Equal(t, 15*time.Minute, cfg.AuthTokenTTL)
	})

	t.Run("malformed duration", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{"HTTP_READ_TIMEOUT": "soon"})
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown backend",
			env:     map[string]string{"STORAGE_BACKEND": "mongo"},
			wantErr: "STORAGE_BACKEND",
		},
		{
			name:    "postgres without url",
			env:     map[string]string{"STORAGE_BACKEND": "postgres"},
			wantErr: "DATABASE_URL",
		},
		{
			name: "postgres min above max",
			env: map[string]string{
				"STORAGE_BACKEND": "postgres",
				"DATABASE_URL":    "postgres://localhost/db",
				"DB_MAX_CONNS":    "2",
				"DB_MIN_CONNS":    "5",
			},
			wantErr: "DB_MIN_CONNS",
		},
		{
			name:    "object with unknown driver",
			env:     map[string]string{"STORAGE_BACKEND": "object", "OBJECT_STORE_DRIVER": "s3"},
			wantErr: "OBJECT_STORE_DRIVER",
		},
		{
			name:    "zero upload files",
			env:     map[string]string{"UPLOAD_MAX_FILES": "0"},
			wantErr: "UPLOAD_MAX_FILES",
		},
		{
			name:    "secret with non-positive ttl",
			env:     map[string]string{"AUTH_TOKEN_SECRET": "x", "AUTH_TOKEN_TTL": "0s"},
			wantErr: "AUTH_TOKEN_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadObjectBackend(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"STORAGE_BACKEND":     "object",
		"OBJECT_STORE_DRIVER": "DIR",
		"OBJECT_STORE_PATH":   "/tmp/objects",
	})
	require.NoError(t, err)
	assert.Equal(t, BackendObject, cfg.StorageBackend)
	assert.Equal(t, DriverDir, cfg.ObjectStoreDriver)
	assert.Equal(t, "/tmp/objects", cfg.ObjectStorePath)
}

func TestLoadUsesProcessEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.ServerPort)
}
