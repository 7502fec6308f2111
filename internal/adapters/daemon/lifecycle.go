// Package daemon implements the background server's process concerns: the
// inactivity lifecycle, resource supervision, and the client side used by
// CLI commands to discover, spawn, and talk to workspace servers.
package daemon

import (
	"sync"
	"time"
)

// Lifecycle manages server inactivity timeout and shutdown. Request
// handling calls Touch; health probes must not, or an idle server polled
// by an editor would never expire.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	startTime    time.Time
	lastActivity time.Time
	timeout      time.Duration
	reason       string
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle creates a lifecycle manager with the given inactivity timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		startTime:    now,
		lastActivity: now,
		timeout:      timeout,
		shutdownChan: make(chan struct{}),
	}
	l.timer = time.AfterFunc(timeout, func() {
		l.trigger("inactivity timeout")
	})
	return l
}

// Touch resets the inactivity timer. Called on every served request.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastActivity = time.Now()
	l.timer.Reset(l.timeout)
}

// Uptime returns how long the server has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// LastActivity returns the timestamp of the last served request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// IdleRemaining returns the duration until auto-shutdown.
func (l *Lifecycle) IdleRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining := l.timeout - time.Since(l.lastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ShutdownChan returns a channel that closes when shutdown is triggered.
func (l *Lifecycle) ShutdownChan() <-chan struct{} {
	return l.shutdownChan
}

// ShutdownReason reports why shutdown was triggered, empty while running.
func (l *Lifecycle) ShutdownReason() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reason
}

func (l *Lifecycle) trigger(reason string) {
	l.shutdownOnce.Do(func() {
		l.mu.Lock()
		l.reason = reason
		l.mu.Unlock()
		close(l.shutdownChan)
	})
}

// Shutdown stops the timer and triggers shutdown (idempotent).
func (l *Lifecycle) Shutdown(reason string) {
	l.timer.Stop()
	l.trigger(reason)
}
