package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendObject   = "object"
	BackendPostgres = "postgres"
)

// Object store drivers.
const (
	DriverBolt = "bolt"
	DriverDir  = "dir"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `env:"SERVER_PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	// Storage selection
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	SeedData       bool   `env:"SEED_DATA" envDefault:"true"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// Object store configuration
	ObjectStoreDriver string `env:"OBJECT_STORE_DRIVER" envDefault:"bolt"`
	ObjectStorePath   string `env:"OBJECT_STORE_PATH" envDefault:"./data/store.db"`

	// Upload configuration
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadMaxFiles int    `env:"UPLOAD_MAX_FILES" envDefault:"5"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`

	// Auth configuration
	AuthTokenSecret string        `env:"AUTH_TOKEN_SECRET"`
	AuthTokenTTL    time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom loads configuration from the given key/value environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.ObjectStoreDriver = strings.ToLower(strings.TrimSpace(cfg.ObjectStoreDriver))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	switch c.StorageBackend {
	case BackendMemory:
	case BackendObject:
		if c.ObjectStoreDriver != DriverBolt && c.ObjectStoreDriver != DriverDir {
			return fmt.Errorf("OBJECT_STORE_DRIVER must be %q or %q", DriverBolt, DriverDir)
		}
		if c.ObjectStorePath == "" {
			return fmt.Errorf("OBJECT_STORE_PATH is required for the object backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
		if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of %q, %q, %q", BackendMemory, BackendObject, BackendPostgres)
	}

	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}
	if c.UploadMaxFiles < 1 {
		return fmt.Errorf("UPLOAD_MAX_FILES must be at least 1")
	}
	if c.UploadMaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	if c.AuthTokenSecret != "" && c.AuthTokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}
	return nil
}
