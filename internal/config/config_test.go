package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")
	dir := writeConfig(t, "storage:\n  local_path: "+uploads+"\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Asia/Karachi", cfg.Server.Timezone)
	assert.True(t, cfg.Server.LegacyRoutes)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "Asia/Karachi", cfg.Database.Loc, "loc follows server timezone")
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)
	assert.False(t, cfg.Presentation.AtomicCreate)
	assert.DirExists(t, uploads)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  timezone: UTC
database:
  driver: postgres
  loc: Asia/Karachi
storage:
  local_path: `+t.TempDir()+`
presentation:
  atomic_create: true
analytics:
  cache_ttl: 30s
`)
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "Asia/Karachi", cfg.Database.Loc)
	assert.True(t, cfg.Presentation.AtomicCreate)
	assert.Equal(t, 30*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := writeConfig(t, "database:\n  driver: oracle\nstorage:\n  local_path: "+t.TempDir()+"\n")
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "unsupported database driver")

	dir = writeConfig(t, "server:\n  timezone: Mars/Olympus\nstorage:\n  local_path: "+t.TempDir()+"\n")
	_, err = LoadConfig(dir)
	assert.ErrorContains(t, err, "invalid server.timezone")
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Timezone: "Nowhere/Atlantis"}}
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, cfg.Location()).Zone()
	assert.Equal(t, 5*60*60, offset)
}
