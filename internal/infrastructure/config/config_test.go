package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3600, cfg.Auth.JWT.TokenExpiresIn)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, 10, cfg.RateLimit.Mutation.Limit)
	assert.Equal(t, 3600, cfg.RateLimit.Mutation.WindowSeconds)
	assert.False(t, cfg.Email.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  port: 9090\ndatabase:\n  driver: mysql\n  database: garage\nauth:\n  jwt:\n    secret: file-secret\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("SHOPAPI_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("SHOPAPI_CACHE_TTL_SECONDS", "5")

	cfg, err := Load("test", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "garage", cfg.Database.Database)
	assert.Equal(t, "env-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 5, cfg.Cache.TTLSeconds)
}

func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	_, err := Load("release", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release mode")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("SHOPAPI_DATABASE_DRIVER", "postgres")

	_, err := Load("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}
