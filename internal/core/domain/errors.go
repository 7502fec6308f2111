package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPortAvailable is returned when the entire port range is exhausted.
	// This is fatal for the spawn attempt; retrying the same range cannot succeed.
	ErrNoPortAvailable = zerr.New("no available ports in the configured range")

	// ErrPortBindFailed is returned when the server cannot bind its assigned port.
	ErrPortBindFailed = zerr.New("failed to bind assigned port")

	// ErrServerNotFound is returned when no live server is registered for a workspace.
	ErrServerNotFound = zerr.New("no server registered for workspace")

	// ErrServerStartTimeout is returned when a spawned server does not report
	// healthy within the wait budget.
	ErrServerStartTimeout = zerr.New("server failed to become healthy within the wait budget")

	// ErrServerUnreachable is returned when a dispatch fails even after a forced respawn.
	ErrServerUnreachable = zerr.New("server unreachable after respawn; check ~/.sema/logs for diagnostics")

	// ErrRegistryWriteFailed is returned when the registry document cannot be replaced.
	ErrRegistryWriteFailed = zerr.New("failed to write server registry")

	// ErrWorkspaceNotFound is returned when the workspace root does not exist.
	ErrWorkspaceNotFound = zerr.New("workspace root does not exist")

	// ErrWorkspaceNotDir is returned when the workspace root is not a directory.
	ErrWorkspaceNotDir = zerr.New("workspace root is not a directory")

	// ErrAnalysisFailed is returned when the analysis engine rejects an input.
	ErrAnalysisFailed = zerr.New("analysis failed")

	// ErrInvalidPosition is returned for a line/column outside the file.
	ErrInvalidPosition = zerr.New("position is outside the file")

	// ErrNoSymbolAtPosition is returned when no identifier covers the requested position.
	ErrNoSymbolAtPosition = zerr.New("no symbol at position")

	// ErrCacheClosed is returned when acquiring from a cache that has been shut down.
	ErrCacheClosed = zerr.New("artifact cache is closed")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrShuttingDown is returned for requests arriving during graceful shutdown.
	ErrShuttingDown = zerr.New("server is shutting down")
)
