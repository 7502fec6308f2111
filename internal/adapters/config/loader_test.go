package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/adapters/config"
	"go.trai.ch/sema/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
ports:
  start: 6000
  end: 6100
watcher:
  debounce_ms: 250
health:
  interval_seconds: 15
  inactivity_minutes: 5
  memory_soft_mb: 256
  memory_hard_mb: 512
  error_streak_limit: 3
cache:
  max_entries: 16
spawn:
  wait_budget_seconds: 8
  poll_interval_ms: 50
`)

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, settings.PortRangeStart)
	assert.Equal(t, 6100, settings.PortRangeEnd)
	assert.Equal(t, 250*time.Millisecond, settings.DebounceWindow)
	assert.Equal(t, 15*time.Second, settings.HealthInterval)
	assert.Equal(t, 5*time.Minute, settings.InactivityTimeout)
	assert.Equal(t, uint64(256)<<20, settings.MemorySoftLimitBytes)
	assert.Equal(t, uint64(512)<<20, settings.MemoryHardLimitBytes)
	assert.Equal(t, 3, settings.ErrorStreakLimit)
	assert.Equal(t, 16, settings.MaxCacheEntries)
	assert.Equal(t, 8*time.Second, settings.SpawnWaitBudget)
	assert.Equal(t, 50*time.Millisecond, settings.SpawnPollInterval)
}

func TestLoad_PartialConfigKeepsDefaultsElsewhere(t *testing.T) {
	path := writeConfig(t, `
cache:
  max_entries: 4
`)

	settings, err := config.Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, 4, settings.MaxCacheEntries)
	assert.Equal(t, defaults.PortRangeStart, settings.PortRangeStart)
	assert.Equal(t, defaults.DebounceWindow, settings.DebounceWindow)
	assert.Equal(t, defaults.InactivityTimeout, settings.InactivityTimeout)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "ports: [not a mapping")

	_, err := config.Load(path)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_UnknownKeysAreIgnored(t *testing.T) {
	path := writeConfig(t, `
telemetry:
  enabled: true
cache:
  max_entries: 7
`)

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, settings.MaxCacheEntries)
}
