// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StorageRoot is the single directory every image key resolves against.
	// Load turns it into an absolute path.
	StorageRoot string `env:"STORAGE_ROOT" envDefault:"./uploads"`

	MaxUploadBytes        int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	MultipartMemoryBytes  int64 `env:"MULTIPART_MEMORY_BYTES" envDefault:"8388608"`
	RejectContentMismatch bool  `env:"REJECT_CONTENT_MISMATCH" envDefault:"false"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	root, err := filepath.Abs(cfg.StorageRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	cfg.StorageRoot = root

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MultipartMemoryBytes <= 0 {
		return nil, fmt.Errorf("MULTIPART_MEMORY_BYTES must be positive, got %d", cfg.MultipartMemoryBytes)
	}
	return &cfg, nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
