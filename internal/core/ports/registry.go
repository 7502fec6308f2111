package ports

import "go.trai.ch/sema/internal/core/domain"

//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks

// Registry is the durable mapping from workspace root to running server.
//
// Implementations persist a single document and serialize writes through
// whole-document atomic replace. Find and Upsert prune entries whose process
// is no longer alive, so staleness is bounded without a background sweep.
// A missing or unreadable document reads as an empty registry, never an error.
type Registry interface {
	// Find returns the live entry for the canonicalized root, or nil.
	Find(root string) (*domain.ServerInfo, error)

	// Upsert inserts or replaces the entry for info.WorkspaceRoot.
	Upsert(info domain.ServerInfo) error

	// Remove deletes the entry for the canonicalized root, if present.
	Remove(root string) error

	// Prune drops entries whose recorded process is dead and reports
	// how many were removed.
	Prune() (int, error)

	// List returns all live entries after pruning.
	List() ([]domain.ServerInfo, error)
}
