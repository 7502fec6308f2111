// Package registry implements the durable server registry as a single JSON
// document with atomic whole-file replacement.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Registry = (*FileRegistry)(nil)

// FileRegistry persists the registry document at a fixed path. Writes go
// through write-to-temp-then-rename so concurrent writers from unrelated
// client processes never leave a torn document behind. A missing or
// malformed document reads as an empty registry.
type FileRegistry struct {
	mu    sync.Mutex
	path  string
	alive func(pid int) bool
}

// New creates a registry backed by the document at path.
func New(path string) *FileRegistry {
	return &FileRegistry{
		path:  path,
		alive: processAlive,
	}
}

// WithAliveFunc overrides process liveness detection. Used in tests.
func (r *FileRegistry) WithAliveFunc(fn func(pid int) bool) *FileRegistry {
	r.alive = fn
	return r
}

// CanonicalRoot resolves root to its canonical absolute form, the registry key.
func CanonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve workspace root")
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// Find returns the live entry for root, pruning dead entries as a side effect.
func (r *FileRegistry) Find(root string) (*domain.ServerInfo, error) {
	canonical, err := CanonicalRoot(root)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.read()
	if r.pruneDoc(&doc) > 0 {
		// Best effort: a failed prune write only delays cleanup.
		_ = r.write(doc)
	}

	for i := range doc.Servers {
		if doc.Servers[i].WorkspaceRoot == canonical {
			info := doc.Servers[i]
			return &info, nil
		}
	}
	return nil, nil
}

// Upsert inserts or replaces the entry keyed by info.WorkspaceRoot.
func (r *FileRegistry) Upsert(info domain.ServerInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.read()
	r.pruneDoc(&doc)

	replaced := false
	for i := range doc.Servers {
		if doc.Servers[i].WorkspaceRoot == info.WorkspaceRoot {
			doc.Servers[i] = info
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Servers = append(doc.Servers, info)
	}

	return r.write(doc)
}

// Remove deletes the entry for root, if present.
func (r *FileRegistry) Remove(root string) error {
	canonical, err := CanonicalRoot(root)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.read()
	kept := doc.Servers[:0]
	for _, s := range doc.Servers {
		if s.WorkspaceRoot != canonical {
			kept = append(kept, s)
		}
	}
	doc.Servers = kept

	return r.write(doc)
}

// Prune drops entries whose process is dead and reports how many were removed.
func (r *FileRegistry) Prune() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.read()
	removed := r.pruneDoc(&doc)
	if removed == 0 {
		return 0, nil
	}
	return removed, r.write(doc)
}

// List returns all live entries after pruning.
func (r *FileRegistry) List() ([]domain.ServerInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.read()
	if r.pruneDoc(&doc) > 0 {
		_ = r.write(doc)
	}
	return doc.Servers, nil
}

// read loads the document, treating absence or corruption as empty.
func (r *FileRegistry) read() domain.RegistryDoc {
	var doc domain.RegistryDoc

	data, err := os.ReadFile(r.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		// Corrupt document: treated as empty, overwritten cleanly on
		// the next write.
		return domain.RegistryDoc{}
	}
	return doc
}

// write atomically replaces the document via temp-file-then-rename.
func (r *FileRegistry) write(doc domain.RegistryDoc) error {
	if doc.Servers == nil {
		doc.Servers = []domain.ServerInfo{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, domain.RegistryFileName+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	return nil
}

// pruneDoc removes dead entries in place and returns how many were dropped.
func (r *FileRegistry) pruneDoc(doc *domain.RegistryDoc) int {
	kept := doc.Servers[:0]
	removed := 0
	for _, s := range doc.Servers {
		if r.alive(s.PID) {
			kept = append(kept, s)
		} else {
			removed++
		}
	}
	doc.Servers = kept
	return removed
}

// processAlive reports whether pid names a running process.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 performs the permission and existence checks without
	// delivering anything.
	err = proc.Signal(syscall.Signal(0))
	return err == nil || err == syscall.EPERM
}
