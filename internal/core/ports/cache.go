package ports

import "context"

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Lease is a read hold on a cached artifact. An entry with outstanding
// leases is never evicted; Release must be called when the read completes.
type Lease interface {
	// Artifact returns the held artifact.
	Artifact() Artifact
	// Release gives the hold back to the cache.
	Release()
}

// ArtifactCache is the per-workspace hot store of analysis artifacts.
//
// An entry present in the cache is assumed fresh: correctness depends on the
// watcher promptly invalidating on writes, and the cache never re-validates
// at read time. For a given path at most one build is in flight; concurrent
// requests for the same uncached path wait for the winner's result.
type ArtifactCache interface {
	// Acquire returns a lease on the artifact for absPath, building it
	// through the engine on a miss.
	Acquire(ctx context.Context, absPath string) (Lease, error)

	// Invalidate removes the entry for absPath if present.
	Invalidate(absPath string)

	// InvalidateAll clears the whole cache. Used on ambiguous bulk changes.
	InvalidateAll()

	// Shrink evicts least-recently-used entries until at most n remain,
	// skipping leased entries. Used for memory-pressure remediation.
	Shrink(n int)

	// Len reports the number of resident entries.
	Len() int

	// Invalidations reports the lifetime invalidation count.
	Invalidations() uint64

	// Close evicts everything and rejects further acquires.
	Close()
}
