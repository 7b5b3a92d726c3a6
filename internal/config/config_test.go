package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, filepath.IsAbs(cfg.StorageRoot))
	assert.Equal(t, "uploads", filepath.Base(cfg.StorageRoot))
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, int64(8<<20), cfg.MultipartMemoryBytes)
	assert.False(t, cfg.RejectContentMismatch)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestParseFromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_ROOT", root)
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("REJECT_CONTENT_MISMATCH", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, root, cfg.StorageRoot)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.True(t, cfg.RejectContentMismatch)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	_, err := Parse()
	require.Error(t, err)

	t.Setenv("MAX_UPLOAD_BYTES", "0")
	_, err = Parse()
	require.Error(t, err)
}
