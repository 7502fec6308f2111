package ports

import (
	"context"
	"iter"
	"time"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchKind classifies a filesystem change.
type WatchKind uint8

const (
	// WatchCreated indicates a file was created.
	WatchCreated WatchKind = iota
	// WatchModified indicates a file was written.
	WatchModified
	// WatchDeleted indicates a file was removed.
	WatchDeleted
	// WatchMoved indicates a file was renamed away from its path.
	WatchMoved
)

// WatchEvent is one normalized change notification. Events are transient:
// consumed immediately by the invalidation handler, never persisted.
type WatchEvent struct {
	// RelPath is the changed file's path relative to the workspace root.
	RelPath string
	// AbsPath is the absolute path of the changed file.
	AbsPath string
	// Kind is the change classification.
	Kind WatchKind
	// ObservedAt is when the watcher saw the raw notification.
	ObservedAt time.Time
}

// Watcher monitors a workspace root for changes to analyzed files. Raw
// notifications are ignore-filtered and debounced before they surface here.
type Watcher interface {
	// Start begins watching root recursively. A start failure is reported
	// once; callers degrade to serving potentially-stale state rather
	// than crashing.
	Start(ctx context.Context, root string) error

	// Stop tears down the watch and closes the event stream.
	Stop() error

	// Events yields normalized change events until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
