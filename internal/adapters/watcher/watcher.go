// Package watcher implements filesystem watching for hot-cache invalidation.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/sema/internal/adapters/ignore"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// watchedExtension restricts notifications to the analyzed file type.
const watchedExtension = ".py"

// Watcher implements recursive filesystem watching using fsnotify.
// Raw notifications go through the ignore ruleset and the per-path
// debouncer before surfacing as normalized events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	rules     *ignore.Ruleset
	debounce  *Debouncer
	logger    ports.Logger
	root      string
	events    chan ports.WatchEvent
}

// NewWatcher creates a watcher with the given debounce window.
// The error is surfaced (not fatal to the server) when the notification
// mechanism cannot be established, e.g. the inotify watch limit is hit.
func NewWatcher(window time.Duration, logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create filesystem watcher")
	}
	return &Watcher{
		fsWatcher: fsw,
		debounce:  NewDebouncer(window),
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching root recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = root
	w.rules = ignore.NewRuleset(root)

	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of normalized change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields watchable directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories rather than aborting the walk.
				return nil //nolint:nilerr // intentional
			}
			if d.IsDir() {
				if path != root && w.rules.IgnoreDir(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents filters and normalizes raw fsnotify events.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleRaw(ctx, event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: filesystem error: " + err.Error())
		}
	}
}

func (w *Watcher) handleRaw(ctx context.Context, event fsnotify.Event) {
	// A created directory must be added to the watch before any filter
	// that would drop the event.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !w.rules.IgnoreDir(info.Name()) {
				for dir := range w.watchRecursively(event.Name) {
					_ = w.fsWatcher.Add(dir)
				}
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, watchedExtension) {
		return
	}
	if w.rules.Ignore(event.Name) {
		return
	}

	kind, ok := w.classify(event.Op)
	if !ok {
		return
	}

	if !w.debounce.Allow(event.Name) {
		return
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return
	}

	out := ports.WatchEvent{
		RelPath:    rel,
		AbsPath:    event.Name,
		Kind:       kind,
		ObservedAt: time.Now(),
	}

	select {
	case w.events <- out:
	case <-ctx.Done():
	}
}

// classify maps an fsnotify op to a normalized kind.
func (w *Watcher) classify(op fsnotify.Op) (ports.WatchKind, bool) {
	switch {
	case op&fsnotify.Write == fsnotify.Write:
		return ports.WatchModified, true
	case op&fsnotify.Create == fsnotify.Create:
		return ports.WatchCreated, true
	case op&fsnotify.Remove == fsnotify.Remove:
		return ports.WatchDeleted, true
	case op&fsnotify.Rename == fsnotify.Rename:
		return ports.WatchMoved, true
	default:
		return 0, false
	}
}
