package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// HealthInfo is the server's liveness report.
type HealthInfo struct {
	Status             string  `json:"status"`
	Workspace          string  `json:"workspace"`
	Uptime             float64 `json:"uptime"`
	Requests           uint64  `json:"requests"`
	CacheSize          int     `json:"cache_size"`
	CacheInvalidations uint64  `json:"cache_invalidations"`
}

// QueryRequest addresses a symbol by workspace-relative file and 1-based position.
type QueryRequest struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// RenameRequest carries the rename refactor parameters.
type RenameRequest struct {
	QueryRequest
	NewName      string      `json:"new_name"`
	OutputFormat PatchFormat `json:"output_format,omitempty"`
}

// ExtractMethodRequest carries the extract-method refactor parameters.
type ExtractMethodRequest struct {
	File         string      `json:"file"`
	StartLine    int         `json:"start_line"`
	EndLine      int         `json:"end_line"`
	MethodName   string      `json:"method_name"`
	OutputFormat PatchFormat `json:"output_format,omitempty"`
}

// ExtractVarRequest carries the extract-variable refactor parameters.
type ExtractVarRequest struct {
	File         string      `json:"file"`
	StartLine    int         `json:"start_line"`
	EndLine      int         `json:"end_line,omitempty"`
	StartCol     int         `json:"start_col,omitempty"`
	EndCol       int         `json:"end_col,omitempty"`
	VarName      string      `json:"var_name"`
	OutputFormat PatchFormat `json:"output_format,omitempty"`
}

// OrganizeImportsRequest carries the organize-imports parameters.
type OrganizeImportsRequest struct {
	File         string      `json:"file"`
	OutputFormat PatchFormat `json:"output_format,omitempty"`
}

// ListRequest addresses a file or directory whose top-level symbols are wanted.
type ListRequest struct {
	Path string `json:"path"`
}

// MoveRequest carries the move refactor parameters.
type MoveRequest struct {
	QueryRequest
	DestFile     string      `json:"dest_file"`
	OutputFormat PatchFormat `json:"output_format,omitempty"`
}

// LocationsResult is the response shape of location queries.
type LocationsResult struct {
	Locations []Location `json:"locations"`
}

// SymbolsResult is the response shape of the list operation.
type SymbolsResult struct {
	Symbols []Symbol `json:"symbols"`
}

// ServerClient speaks the HTTP surface of one workspace server.
type ServerClient interface {
	Health(ctx context.Context) (*HealthInfo, error)
	Definitions(ctx context.Context, req QueryRequest) (*LocationsResult, error)
	References(ctx context.Context, req QueryRequest) (*LocationsResult, error)
	Occurrences(ctx context.Context, req QueryRequest) (*LocationsResult, error)
	Hover(ctx context.Context, req QueryRequest) (*Hover, error)
	Rename(ctx context.Context, req RenameRequest) (*PatchSet, error)
	ExtractMethod(ctx context.Context, req ExtractMethodRequest) (*PatchSet, error)
	ExtractVariable(ctx context.Context, req ExtractVarRequest) (*PatchSet, error)
	OrganizeImports(ctx context.Context, req OrganizeImportsRequest) (*PatchSet, error)
	Move(ctx context.Context, req MoveRequest) (*PatchSet, error)
	List(ctx context.Context, req ListRequest) (*SymbolsResult, error)
	Shutdown(ctx context.Context) error
}

// Coordinator is the discovery/spawn/retry logic run from the calling process.
type Coordinator interface {
	// Connect returns a client for the workspace root, spawning a server
	// when none is registered or the registered one is unhealthy.
	Connect(ctx context.Context, root string) (ServerClient, error)

	// Do runs call against the workspace's server, forcing one respawn and
	// retrying exactly once when the dispatch fails on transport.
	Do(ctx context.Context, root string, call func(ServerClient) error) error

	// Stop gracefully terminates the workspace's server, if any.
	Stop(ctx context.Context, root string) error
}

// ProbeTimeout bounds a single health probe during discovery.
const ProbeTimeout = 1 * time.Second
