package registry_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/adapters/registry"
	"go.trai.ch/sema/internal/core/domain"
)

func newTestRegistry(t *testing.T) (*registry.FileRegistry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servers.json")
	reg := registry.New(path).WithAliveFunc(func(int) bool { return true })
	return reg, path
}

func entryFor(root string, port, pid int) domain.ServerInfo {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.ServerInfo{
		WorkspaceRoot: root,
		Port:          port,
		PID:           pid,
		StartedAt:     now,
		LastActivity:  now,
	}
}

func TestFileRegistry_FindMissing(t *testing.T) {
	reg, _ := newTestRegistry(t)

	root := t.TempDir()
	info, err := reg.Find(root)

	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestFileRegistry_UpsertThenFind(t *testing.T) {
	reg, _ := newTestRegistry(t)
	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)

	require.NoError(t, reg.Upsert(entryFor(canonical, 5001, 100)))

	info, err := reg.Find(root)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, canonical, info.WorkspaceRoot)
	assert.Equal(t, 5001, info.Port)
	assert.Equal(t, 100, info.PID)
}

func TestFileRegistry_UpsertReplacesExisting(t *testing.T) {
	reg, _ := newTestRegistry(t)
	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)

	require.NoError(t, reg.Upsert(entryFor(canonical, 5001, 100)))
	require.NoError(t, reg.Upsert(entryFor(canonical, 5002, 200)))

	list, err := reg.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5002, list[0].Port)
	assert.Equal(t, 200, list[0].PID)
}

func TestFileRegistry_Remove(t *testing.T) {
	reg, _ := newTestRegistry(t)
	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)

	require.NoError(t, reg.Upsert(entryFor(canonical, 5001, 100)))
	require.NoError(t, reg.Remove(root))

	info, err := reg.Find(root)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestFileRegistry_RemoveMissingIsNoError(t *testing.T) {
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.Remove(t.TempDir()))
}

func TestFileRegistry_PruneDropsDeadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.json")
	reg := registry.New(path).WithAliveFunc(func(pid int) bool { return pid == 100 })

	rootA, rootB := t.TempDir(), t.TempDir()
	canonicalA, err := registry.CanonicalRoot(rootA)
	require.NoError(t, err)
	canonicalB, err := registry.CanonicalRoot(rootB)
	require.NoError(t, err)

	require.NoError(t, reg.Upsert(entryFor(canonicalA, 5001, 100)))
	require.NoError(t, reg.Upsert(entryFor(canonicalB, 5002, 999)))

	removed, err := reg.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	list, err := reg.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, canonicalA, list[0].WorkspaceRoot)
}

func TestFileRegistry_FindPrunesDeadEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.json")
	reg := registry.New(path).WithAliveFunc(func(int) bool { return false })

	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)

	// Seed the file directly to simulate an entry left behind by a
	// crashed server.
	doc := domain.RegistryDoc{Servers: []domain.ServerInfo{entryFor(canonical, 5001, 100)}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	info, err := reg.Find(root)
	require.NoError(t, err)
	assert.Nil(t, info)

	list, err := reg.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileRegistry_CorruptDocumentReadsAsEmpty(t *testing.T) {
	reg, path := newTestRegistry(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	list, err := reg.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// The next write replaces the corrupt document cleanly.
	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)
	require.NoError(t, reg.Upsert(entryFor(canonical, 5001, 100)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc domain.RegistryDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Servers, 1)
}

func TestFileRegistry_WriteIsWellFormedJSON(t *testing.T) {
	reg, path := newTestRegistry(t)
	root := t.TempDir()
	canonical, err := registry.CanonicalRoot(root)
	require.NoError(t, err)

	require.NoError(t, reg.Upsert(entryFor(canonical, 5001, 100)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc domain.RegistryDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, canonical, doc.Servers[0].WorkspaceRoot)

	// No temp files left behind by the atomic replace.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileRegistry_ListSeparateWorkspaces(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for i, root := range []string{t.TempDir(), t.TempDir(), t.TempDir()} {
		canonical, err := registry.CanonicalRoot(root)
		require.NoError(t, err)
		require.NoError(t, reg.Upsert(entryFor(canonical, 5001+i, 100+i)))
	}

	list, err := reg.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCanonicalRoot_ResolvesSymlinks(t *testing.T) {
	target := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(target, link))

	fromLink, err := registry.CanonicalRoot(link)
	require.NoError(t, err)
	fromTarget, err := registry.CanonicalRoot(target)
	require.NoError(t, err)

	assert.Equal(t, fromTarget, fromLink)
}
