// Package config provides the settings loader for sema.
package config

import (
	"os"
	"time"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads the optional settings file at path and returns the merged
// settings. A missing file yields the defaults; a malformed file is an
// error so a typo is never silently ignored.
func Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a fixed user-scoped location
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	s := domain.Settings{
		PortRangeStart:       cf.Ports.Start,
		PortRangeEnd:         cf.Ports.End,
		DebounceWindow:       time.Duration(cf.Watcher.DebounceMs) * time.Millisecond,
		HealthInterval:       time.Duration(cf.Health.IntervalSeconds) * time.Second,
		InactivityTimeout:    time.Duration(cf.Health.InactivityMinutes) * time.Minute,
		MemorySoftLimitBytes: uint64(cf.Health.MemorySoftMB) << 20, //nolint:gosec // G115: bounded config value
		MemoryHardLimitBytes: uint64(cf.Health.MemoryHardMB) << 20, //nolint:gosec // G115: bounded config value
		MaxCacheEntries:      cf.Cache.MaxEntries,
		ErrorStreakLimit:     cf.Health.ErrorStreakLimit,
		SpawnWaitBudget:      time.Duration(cf.Spawn.WaitBudgetSeconds) * time.Second,
		SpawnPollInterval:    time.Duration(cf.Spawn.PollIntervalMs) * time.Millisecond,
	}

	return s.Normalize(), nil
}
