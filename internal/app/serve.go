package app

import (
	"context"
	"os"
	"time"

	"go.trai.ch/sema/internal/adapters/cache"
	"go.trai.ch/sema/internal/adapters/daemon"
	"go.trai.ch/sema/internal/adapters/engine"
	"go.trai.ch/sema/internal/adapters/httpapi"
	"go.trai.ch/sema/internal/adapters/telemetry"
	"go.trai.ch/sema/internal/adapters/watcher"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Root   string
	Port   int
	Daemon bool
}

// Serve runs a workspace server until shutdown. This is what a spawned
// `server serve --daemon` process executes; it owns the engine, cache,
// watcher, monitor and HTTP surface for one workspace.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	absRoot, err := daemon.ResolveWorkspace(opts.Root)
	if err != nil {
		return err
	}

	if opts.Daemon {
		// Daemon output goes to the spawner's log file; structured lines
		// keep it machine-readable.
		a.logger.SetJSON(true)
	}

	tp := telemetry.InstallProvider(a.logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
	}()
	tracer := telemetry.NewOTelTracer("sema")

	eng := engine.New(absRoot)
	artifacts := cache.New(eng, tracer, a.settings.MaxCacheEntries)
	defer artifacts.Close()

	lifecycle := daemon.NewLifecycle(a.settings.InactivityTimeout)
	server := httpapi.New(absRoot, eng, artifacts, lifecycle, a.logger, tracer)

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.startWatcher(serveCtx, absRoot, artifacts)

	monitor := daemon.NewMonitor(lifecycle, artifacts, a.logger, a.settings, server.ErrStreak)
	go monitor.Run(serveCtx)

	// Bind before registering so a lost port race never leaves a
	// registration pointing at a port some other process owns.
	listener, err := server.Bind(opts.Port)
	if err != nil {
		return err
	}

	now := time.Now()
	info := domain.ServerInfo{
		WorkspaceRoot: absRoot,
		Port:          opts.Port,
		PID:           os.Getpid(),
		StartedAt:     now,
		LastActivity:  now,
	}
	if err := a.registry.Upsert(info); err != nil {
		_ = listener.Close()
		return err
	}
	defer func() {
		if removeErr := a.registry.Remove(absRoot); removeErr != nil {
			a.logger.Warnf("failed to deregister on shutdown: %v", removeErr)
		}
	}()
	go a.refreshRegistration(serveCtx, info, lifecycle)

	a.logger.Infof("serving workspace %s on port %d", absRoot, opts.Port)
	err = server.Serve(serveCtx, listener)
	if reason := lifecycle.ShutdownReason(); reason != "" {
		a.logger.Infof("server stopped: %s", reason)
	}
	return err
}

// startWatcher wires filesystem events into cache invalidation. A watcher
// that cannot be established degrades the server to possibly stale results
// instead of failing startup.
func (a *App) startWatcher(ctx context.Context, absRoot string, artifacts ports.ArtifactCache) {
	w, err := watcher.NewWatcher(a.settings.DebounceWindow, a.logger)
	if err != nil {
		a.logger.Warnf("file watching unavailable, cached results may go stale: %v", err)
		return
	}
	if err := w.Start(ctx, absRoot); err != nil {
		_ = w.Stop()
		a.logger.Warnf("file watching unavailable, cached results may go stale: %v", err)
		return
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for event := range w.Events() {
			// Deletes and renames drop the entry the same way writes do;
			// the next query rebuilds from whatever is on disk then.
			artifacts.Invalidate(event.AbsPath)
		}
	}()
}

// refreshRegistration keeps the registry's last-activity column roughly
// current so `server list` is meaningful for long-lived servers.
func (a *App) refreshRegistration(ctx context.Context, info domain.ServerInfo, lifecycle *daemon.Lifecycle) {
	ticker := time.NewTicker(a.settings.HealthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-lifecycle.ShutdownChan():
			return
		case <-ticker.C:
			info.LastActivity = lifecycle.LastActivity()
			if err := a.registry.Upsert(info); err != nil {
				a.logger.Warnf("failed to refresh registration: %v", err)
			}
		}
	}
}
