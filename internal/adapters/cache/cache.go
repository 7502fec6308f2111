// Package cache implements the per-workspace hot store of analysis artifacts.
package cache

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.ArtifactCache = (*ArtifactCache)(nil)

// entry is one resident artifact. refs counts outstanding leases; an entry
// with refs > 0 is never evicted, only marked doomed and released by the
// last lease.
type entry struct {
	absPath     string
	fingerprint domain.Fingerprint
	artifact    ports.Artifact
	element     *list.Element
	refs        int
	doomed      bool
}

// ArtifactCache is an LRU artifact store with singleflight builds.
//
// Freshness is watcher-driven: a resident entry is served as-is, and the
// watcher's invalidation on the next write to the file is what keeps reads
// correct. Builds for the same path are collapsed so at most one is in
// flight per key.
type ArtifactCache struct {
	mu         sync.Mutex
	engine     ports.Engine
	tracer     ports.Tracer
	entries    map[string]*entry
	lru        *list.List // front = most recently used
	maxEntries int
	closed     bool

	group         singleflight.Group
	invalidations atomic.Uint64
}

// New creates a cache over the given engine with the given entry ceiling.
func New(engine ports.Engine, tracer ports.Tracer, maxEntries int) *ArtifactCache {
	return &ArtifactCache{
		engine:     engine,
		tracer:     tracer,
		entries:    make(map[string]*entry),
		lru:        list.New(),
		maxEntries: maxEntries,
	}
}

// lease implements ports.Lease.
type lease struct {
	cache *ArtifactCache
	entry *entry
	once  sync.Once
}

func (l *lease) Artifact() ports.Artifact { return l.entry.artifact }

func (l *lease) Release() {
	l.once.Do(func() {
		l.cache.release(l.entry)
	})
}

// Acquire returns a lease on the artifact for absPath, building on a miss.
func (c *ArtifactCache) Acquire(ctx context.Context, absPath string) (ports.Lease, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, domain.ErrCacheClosed
	}
	c.mu.Unlock()

	if l, ok := c.acquireHit(absPath); ok {
		return l, nil
	}

	// Miss: collapse concurrent builds for the same path. The loser of the
	// race reuses the winner's freshly inserted entry.
	_, err, _ := c.group.Do(absPath, func() (any, error) {
		if _, ok := c.peek(absPath); ok {
			return nil, nil
		}

		buildCtx, span := c.tracer.Start(ctx, "cache.build")
		span.SetAttr("path", absPath)
		defer span.End()

		info, statErr := os.Stat(absPath)
		if statErr != nil {
			span.RecordError(statErr)
			return nil, zerr.Wrap(statErr, domain.ErrAnalysisFailed.Error())
		}

		art, buildErr := c.engine.Build(buildCtx, absPath)
		if buildErr != nil {
			span.RecordError(buildErr)
			return nil, buildErr
		}

		c.insert(absPath, domain.FingerprintOf(info), art)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	if l, ok := c.acquireHit(absPath); ok {
		return l, nil
	}
	// The entry was invalidated between build and acquire; the caller's
	// retry goes through a fresh build.
	return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New(fmt.Sprintf("artifact for %s invalidated during build", absPath)))
}

// acquireHit takes a lease on a resident entry, bumping its recency.
func (c *ArtifactCache) acquireHit(absPath string) (ports.Lease, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, false
	}
	e, ok := c.entries[absPath]
	if !ok {
		return nil, false
	}
	e.refs++
	c.lru.MoveToFront(e.element)
	return &lease{cache: c, entry: e}, true
}

// peek reports residency without taking a lease.
func (c *ArtifactCache) peek(absPath string) (*entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[absPath]
	return e, ok
}

// insert adds a freshly built entry, evicting LRU overflow.
func (c *ArtifactCache) insert(absPath string, fp domain.Fingerprint, art ports.Artifact) {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		art.Close()
		return
	}

	var evicted []ports.Artifact
	if old, ok := c.entries[absPath]; ok {
		if a := c.dropLocked(old); a != nil {
			evicted = append(evicted, a)
		}
	}

	e := &entry{absPath: absPath, fingerprint: fp, artifact: art}
	e.element = c.lru.PushFront(e)
	c.entries[absPath] = e

	// The fresh entry is exempt: when every older entry is leased it would
	// be the only evictable one, and evicting it would fail the acquire
	// that triggered this build.
	for c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		victim := c.oldestEvictableLocked()
		if victim == nil || victim == e {
			break
		}
		evicted = append(evicted, victim.artifact)
		c.removeLocked(victim)
	}
	c.mu.Unlock()

	for _, a := range evicted {
		a.Close()
	}
}

// release returns a lease; the last lease of a doomed entry closes it.
func (c *ArtifactCache) release(e *entry) {
	c.mu.Lock()
	e.refs--
	closeNow := e.doomed && e.refs == 0
	c.mu.Unlock()

	if closeNow {
		e.artifact.Close()
	}
}

// Invalidate removes the entry for absPath unconditionally, if present.
func (c *ArtifactCache) Invalidate(absPath string) {
	c.mu.Lock()
	e, ok := c.entries[absPath]
	if !ok {
		c.mu.Unlock()
		return
	}
	closeNow := c.dropLocked(e)
	c.invalidations.Add(1)
	c.mu.Unlock()

	if closeNow != nil {
		closeNow.Close()
	}
}

// InvalidateAll clears the whole cache. Used on ambiguous bulk changes.
func (c *ArtifactCache) InvalidateAll() {
	c.mu.Lock()
	var toClose []ports.Artifact
	for _, e := range c.entries {
		if a := c.dropLocked(e); a != nil {
			toClose = append(toClose, a)
		}
	}
	c.invalidations.Add(1)
	c.mu.Unlock()

	for _, a := range toClose {
		a.Close()
	}
}

// Shrink evicts least-recently-used unleased entries until at most n remain.
func (c *ArtifactCache) Shrink(n int) {
	c.mu.Lock()
	var toClose []ports.Artifact
	for len(c.entries) > n {
		victim := c.oldestEvictableLocked()
		if victim == nil {
			break
		}
		toClose = append(toClose, victim.artifact)
		c.removeLocked(victim)
	}
	c.mu.Unlock()

	for _, a := range toClose {
		a.Close()
	}
}

// Len reports the number of resident entries.
func (c *ArtifactCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Invalidations reports the lifetime invalidation count.
func (c *ArtifactCache) Invalidations() uint64 {
	return c.invalidations.Load()
}

// Close evicts everything and rejects further acquires.
func (c *ArtifactCache) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	var toClose []ports.Artifact
	for _, e := range c.entries {
		if a := c.dropLocked(e); a != nil {
			toClose = append(toClose, a)
		}
	}
	c.mu.Unlock()

	for _, a := range toClose {
		a.Close()
	}
}

// dropLocked detaches an entry from the cache. When no lease is outstanding
// it returns the artifact for the caller to close; otherwise the entry is
// doomed and the last lease closes it. Caller holds the lock.
func (c *ArtifactCache) dropLocked(e *entry) ports.Artifact {
	c.removeLocked(e)
	if e.refs == 0 {
		return e.artifact
	}
	e.doomed = true
	return nil
}

// removeLocked unlinks an entry from the map and LRU list. Caller holds the lock.
func (c *ArtifactCache) removeLocked(e *entry) {
	delete(c.entries, e.absPath)
	if e.element != nil {
		c.lru.Remove(e.element)
		e.element = nil
	}
}

// oldestEvictableLocked finds the least recently used entry with no leases.
// Caller holds the lock.
func (c *ArtifactCache) oldestEvictableLocked() *entry {
	for el := c.lru.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*entry)
		if e.refs == 0 {
			return e
		}
	}
	return nil
}
