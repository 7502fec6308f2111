package domain

import "time"

// Settings carries every tunable threshold of the system. Zero values are
// replaced by defaults through Normalize, so a partially specified config
// file only overrides what it names.
type Settings struct {
	// PortRangeStart and PortRangeEnd bound the allocator scan, half-open.
	PortRangeStart int
	PortRangeEnd   int

	// DebounceWindow suppresses repeat watch events for the same path.
	DebounceWindow time.Duration

	// HealthInterval is the period of the health monitor tick.
	HealthInterval time.Duration

	// InactivityTimeout is how long a server may sit idle before shutting down.
	InactivityTimeout time.Duration

	// MemorySoftLimitBytes triggers aggressive cache eviction with a warning.
	MemorySoftLimitBytes uint64

	// MemoryHardLimitBytes triggers shutdown when exceeded on consecutive checks.
	MemoryHardLimitBytes uint64

	// MaxCacheEntries is the hot cache LRU ceiling.
	MaxCacheEntries int

	// ErrorStreakLimit is the number of consecutive request failures after
	// which the server self-terminates.
	ErrorStreakLimit int

	// SpawnWaitBudget bounds how long a client waits for a spawned server
	// to report healthy.
	SpawnWaitBudget time.Duration

	// SpawnPollInterval is the delay between health probes during spawn.
	SpawnPollInterval time.Duration
}

// Default thresholds. The port range and debounce window follow the
// conventions the clients already expect.
const (
	DefaultPortRangeStart    = 5000
	DefaultPortRangeEnd      = 6000
	DefaultDebounceWindow    = 100 * time.Millisecond
	DefaultHealthInterval    = 30 * time.Second
	DefaultInactivityTimeout = 30 * time.Minute
	DefaultMemorySoftLimit   = 500 << 20
	DefaultMemoryHardLimit   = 1000 << 20
	DefaultMaxCacheEntries   = 256
	DefaultErrorStreakLimit  = 5
	DefaultSpawnWaitBudget   = 5 * time.Second
	DefaultSpawnPollInterval = 100 * time.Millisecond
)

// DefaultSettings returns the built-in thresholds.
func DefaultSettings() Settings {
	return Settings{
		PortRangeStart:       DefaultPortRangeStart,
		PortRangeEnd:         DefaultPortRangeEnd,
		DebounceWindow:       DefaultDebounceWindow,
		HealthInterval:       DefaultHealthInterval,
		InactivityTimeout:    DefaultInactivityTimeout,
		MemorySoftLimitBytes: DefaultMemorySoftLimit,
		MemoryHardLimitBytes: DefaultMemoryHardLimit,
		MaxCacheEntries:      DefaultMaxCacheEntries,
		ErrorStreakLimit:     DefaultErrorStreakLimit,
		SpawnWaitBudget:      DefaultSpawnWaitBudget,
		SpawnPollInterval:    DefaultSpawnPollInterval,
	}
}

// Normalize fills zero-valued fields with defaults and returns the result.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.PortRangeStart == 0 {
		s.PortRangeStart = def.PortRangeStart
	}
	if s.PortRangeEnd == 0 {
		s.PortRangeEnd = def.PortRangeEnd
	}
	if s.DebounceWindow == 0 {
		s.DebounceWindow = def.DebounceWindow
	}
	if s.HealthInterval == 0 {
		s.HealthInterval = def.HealthInterval
	}
	if s.InactivityTimeout == 0 {
		s.InactivityTimeout = def.InactivityTimeout
	}
	if s.MemorySoftLimitBytes == 0 {
		s.MemorySoftLimitBytes = def.MemorySoftLimitBytes
	}
	if s.MemoryHardLimitBytes == 0 {
		s.MemoryHardLimitBytes = def.MemoryHardLimitBytes
	}
	if s.MaxCacheEntries == 0 {
		s.MaxCacheEntries = def.MaxCacheEntries
	}
	if s.ErrorStreakLimit == 0 {
		s.ErrorStreakLimit = def.ErrorStreakLimit
	}
	if s.SpawnWaitBudget == 0 {
		s.SpawnWaitBudget = def.SpawnWaitBudget
	}
	if s.SpawnPollInterval == 0 {
		s.SpawnPollInterval = def.SpawnPollInterval
	}
	return s
}
