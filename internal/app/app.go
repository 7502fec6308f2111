// Package app implements the application layer for sema.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/sema/internal/adapters/daemon"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

// App exposes the operations the CLI layer drives: analysis queries routed
// to per-workspace servers, and server lifecycle management.
type App struct {
	coordinator ports.Coordinator
	registry    ports.Registry
	settings    domain.Settings
	logger      ports.Logger

	// dial is replaceable in tests.
	dial func(port int) ports.ServerClient
}

// New creates a new App instance.
func New(
	coordinator ports.Coordinator,
	registry ports.Registry,
	settings domain.Settings,
	log ports.Logger,
) *App {
	return &App{
		coordinator: coordinator,
		registry:    registry,
		settings:    settings,
		logger:      log,
		dial:        func(port int) ports.ServerClient { return daemon.Dial(port) },
	}
}

// Definitions resolves the defining occurrences of the symbol at the request
// position, spawning a workspace server when needed.
func (a *App) Definitions(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error) {
	var result *ports.LocationsResult
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.Definitions(ctx, req)
		return callErr
	})
	return result, err
}

// References finds workspace-wide references to the symbol at the request
// position.
func (a *App) References(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error) {
	var result *ports.LocationsResult
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.References(ctx, req)
		return callErr
	})
	return result, err
}

// Occurrences finds same-file occurrences of the symbol at the request
// position.
func (a *App) Occurrences(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error) {
	var result *ports.LocationsResult
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.Occurrences(ctx, req)
		return callErr
	})
	return result, err
}

// Hover describes the symbol at the request position.
func (a *App) Hover(ctx context.Context, root string, req ports.QueryRequest) (*ports.Hover, error) {
	var result *ports.Hover
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.Hover(ctx, req)
		return callErr
	})
	return result, err
}

// Rename produces workspace-wide rename patches.
func (a *App) Rename(ctx context.Context, root string, req ports.RenameRequest) (*ports.PatchSet, error) {
	var result *ports.PatchSet
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.Rename(ctx, req)
		return callErr
	})
	return result, err
}

// ExtractMethod produces patches lifting a line range into a new function.
func (a *App) ExtractMethod(ctx context.Context, root string, req ports.ExtractMethodRequest) (*ports.PatchSet, error) {
	var result *ports.PatchSet
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.ExtractMethod(ctx, req)
		return callErr
	})
	return result, err
}

// ExtractVariable produces patches binding a selection to a new variable.
func (a *App) ExtractVariable(ctx context.Context, root string, req ports.ExtractVarRequest) (*ports.PatchSet, error) {
	var result *ports.PatchSet
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.ExtractVariable(ctx, req)
		return callErr
	})
	return result, err
}

// OrganizeImports produces patches normalizing a file's imports.
func (a *App) OrganizeImports(ctx context.Context, root string, req ports.OrganizeImportsRequest) (*ports.PatchSet, error) {
	var result *ports.PatchSet
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.OrganizeImports(ctx, req)
		return callErr
	})
	return result, err
}

// Move produces patches relocating a top-level definition to another file.
func (a *App) Move(ctx context.Context, root string, req ports.MoveRequest) (*ports.PatchSet, error) {
	var result *ports.PatchSet
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.Move(ctx, req)
		return callErr
	})
	return result, err
}

// ListSymbols reports the top-level functions and classes under a file or
// directory.
func (a *App) ListSymbols(ctx context.Context, root string, req ports.ListRequest) (*ports.SymbolsResult, error) {
	var result *ports.SymbolsResult
	err := a.coordinator.Do(ctx, root, func(client ports.ServerClient) error {
		var callErr error
		result, callErr = client.List(ctx, req)
		return callErr
	})
	return result, err
}

// ServerStatus reports the health of the workspace's server without ever
// spawning one.
func (a *App) ServerStatus(ctx context.Context, root string) (*ports.HealthInfo, error) {
	absRoot, err := daemon.ResolveWorkspace(root)
	if err != nil {
		return nil, err
	}
	info, err := a.registry.Find(absRoot)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.Join(domain.ErrServerNotFound, zerr.New(fmt.Sprintf("no server registered for %s", absRoot)))
	}

	probeCtx, cancel := context.WithTimeout(ctx, ports.ProbeTimeout)
	defer cancel()
	health, err := a.dial(info.Port).Health(probeCtx)
	if err != nil {
		return nil, errors.Join(domain.ErrServerUnreachable, err)
	}
	return health, nil
}

// StopServer gracefully terminates the workspace's server.
func (a *App) StopServer(ctx context.Context, root string) error {
	return a.coordinator.Stop(ctx, root)
}

// ListServers returns all live registrations, pruning dead ones first.
func (a *App) ListServers() ([]domain.ServerInfo, error) {
	if _, err := a.registry.Prune(); err != nil {
		return nil, err
	}
	return a.registry.List()
}
