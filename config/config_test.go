package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "database.sqlite3", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := []byte("http_port: 9090\ndatabase:\n  driver: mysql\n  dsn: user:pass@tcp(localhost:3306)/enroll\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/enroll", cfg.Database.DSN)
	// keys absent from the file keep their defaults
	assert.Equal(t, "warn", cfg.Database.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENROLL_HTTP_PORT", "7070")
	t.Setenv("ENROLL_DATABASE_DSN", "/tmp/other.sqlite3")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTPPort)
	assert.Equal(t, "/tmp/other.sqlite3", cfg.Database.DSN)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("http_port: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
