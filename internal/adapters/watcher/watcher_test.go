package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/sema/internal/adapters/watcher"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/sema/internal/core/ports/mocks"
)

func startWatcher(t *testing.T, root string) <-chan ports.WatchEvent {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(10*time.Millisecond, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, root))

	out := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()
	return out
}

func waitForEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "event stream closed early")
		return event
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsModifiedFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(path, []byte("x = 2\n"), 0o644))

	event := waitForEvent(t, events)
	assert.Equal(t, path, event.AbsPath)
	assert.Equal(t, "main.py", event.RelPath)
	assert.False(t, event.ObservedAt.IsZero())
}

func TestWatcher_ReportsCreatedFile(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	path := filepath.Join(root, "new.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	event := waitForEvent(t, events)
	assert.Equal(t, path, event.AbsPath)
}

func TestWatcher_StopAfterFailedStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(10*time.Millisecond, log)
	require.NoError(t, err)
	require.NoError(t, w.Stop())

	// The closed notification handle makes Start fail; the caller's
	// cleanup Stop must still be safe.
	err = w.Start(context.Background(), t.TempDir())
	require.Error(t, err)
	require.NoError(t, w.Stop())
}

func TestWatcher_FiltersIgnoredAndForeignFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "__pycache__"), 0o755))

	events := startWatcher(t, root)

	// Neither a cache artifact nor a non-Python file should surface.
	require.NoError(t, os.WriteFile(filepath.Join(root, "__pycache__", "mod.py"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real.py"), []byte("x = 1\n"), 0o644))

	event := waitForEvent(t, events)
	assert.Equal(t, "real.py", event.RelPath)
}
