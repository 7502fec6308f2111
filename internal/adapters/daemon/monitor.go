package daemon

import (
	"context"
	"runtime"
	"time"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// Monitor supervises a running server's resource usage. Inactivity is the
// lifecycle's own timer; the monitor handles the memory ceilings and the
// consecutive-failure streak on its periodic tick.
type Monitor struct {
	lifecycle *Lifecycle
	cache     ports.ArtifactCache
	log       ports.Logger
	settings  domain.Settings

	// errStreak reports the current run of consecutive request failures.
	errStreak func() int

	// memUsage is replaceable in tests. The default reads the Go heap.
	memUsage func() uint64

	hardHits int
}

// NewMonitor creates a monitor over the given lifecycle and cache.
func NewMonitor(
	lifecycle *Lifecycle,
	cache ports.ArtifactCache,
	log ports.Logger,
	settings domain.Settings,
	errStreak func() int,
) *Monitor {
	return &Monitor{
		lifecycle: lifecycle,
		cache:     cache,
		log:       log,
		settings:  settings,
		errStreak: errStreak,
		memUsage:  heapInUse,
	}
}

// Run ticks until ctx is canceled or the lifecycle shuts down.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.settings.HealthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.lifecycle.ShutdownChan():
			return
		case <-ticker.C:
			m.check()
		}
	}
}

// check applies one supervision pass. The hard memory limit must hold for
// two consecutive ticks before it kills the server, so a single transient
// allocation spike survives.
func (m *Monitor) check() {
	mem := m.memUsage()

	switch {
	case mem > m.settings.MemoryHardLimitBytes:
		m.hardHits++
		m.log.Warnf("memory above hard limit: %d MiB", mem>>20)
		if m.hardHits >= 2 {
			m.lifecycle.Shutdown("memory hard limit exceeded")
			return
		}
		m.cache.InvalidateAll()
	case mem > m.settings.MemorySoftLimitBytes:
		m.hardHits = 0
		target := m.cache.Len() / 2
		if target < m.cache.Len() {
			m.log.Warnf("memory above soft limit: %d MiB, shrinking cache to %d entries", mem>>20, target)
			m.cache.Shrink(target)
		}
	default:
		m.hardHits = 0
	}

	if streak := m.errStreak(); streak >= m.settings.ErrorStreakLimit {
		m.log.Warnf("shutting down after %d consecutive request failures", streak)
		m.lifecycle.Shutdown("consecutive request failures")
	}
}

func heapInUse() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapInuse
}
