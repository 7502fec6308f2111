package config

// configFile is the YAML shape of ~/.sema/config.yaml. Every field is
// optional; zero values fall back to the built-in defaults.
type configFile struct {
	Ports struct {
		Start int `yaml:"start"`
		End   int `yaml:"end"`
	} `yaml:"ports"`

	Watcher struct {
		DebounceMs int `yaml:"debounce_ms"`
	} `yaml:"watcher"`

	Health struct {
		IntervalSeconds   int `yaml:"interval_seconds"`
		InactivityMinutes int `yaml:"inactivity_minutes"`
		MemorySoftMB      int `yaml:"memory_soft_mb"`
		MemoryHardMB      int `yaml:"memory_hard_mb"`
		ErrorStreakLimit  int `yaml:"error_streak_limit"`
	} `yaml:"health"`

	Cache struct {
		MaxEntries int `yaml:"max_entries"`
	} `yaml:"cache"`

	Spawn struct {
		WaitBudgetSeconds int `yaml:"wait_budget_seconds"`
		PollIntervalMs    int `yaml:"poll_interval_ms"`
	} `yaml:"spawn"`
}
