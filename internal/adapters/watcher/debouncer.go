package watcher

import (
	"sync"
	"time"
)

// Debouncer is a per-path time-windowed deduplicator. A second notification
// for the same path inside the window is suppressed, so an editor's
// save-as-temp-then-rename burst collapses into one logical change.
//
// The last-seen map is transient state: entries past the window carry no
// meaning and are swept opportunistically, so the map never grows with the
// workspace's full file count.
type Debouncer struct {
	mu       sync.Mutex
	window   time.Duration
	lastSeen map[string]time.Time
	now      func() time.Time
}

// NewDebouncer creates a debouncer with the given suppression window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:   window,
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether an event for path should pass, recording the
// observation when it does.
func (d *Debouncer) Allow(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if prev, ok := d.lastSeen[path]; ok && now.Sub(prev) < d.window {
		return false
	}
	d.lastSeen[path] = now

	if len(d.lastSeen) > 1024 {
		d.sweep(now)
	}
	return true
}

// sweep drops expired entries. Caller holds the lock.
func (d *Debouncer) sweep(now time.Time) {
	for p, t := range d.lastSeen {
		if now.Sub(t) >= d.window {
			delete(d.lastSeen, p)
		}
	}
}
