package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrgen/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "qrcodes.db", cfg.Database.SQLitePath)
	assert.Equal(t, "static/images", cfg.Storage.ImageDir)
	assert.Equal(t, "/images", cfg.Storage.ImageRoute)
	assert.Empty(t, cfg.Storage.PublicBaseURL)
	assert.Equal(t, 2048, cfg.Validation.MaxURLLength)
	assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EphemeralDeployment(t *testing.T) {
	t.Setenv("STORAGE_IMAGE_DIR", "/tmp/images")
	t.Setenv("DB_SQLITE_PATH", "/tmp/qrcodes.db")
	t.Setenv("PUBLIC_BASE_URL", "https://qr.example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/images", cfg.Storage.ImageDir)
	assert.Equal(t, "/tmp/qrcodes.db", cfg.Database.SQLitePath)
	assert.Equal(t, "https://qr.example.com", cfg.Storage.PublicBaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Lock.RedisURL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
