package geometry

import (
	"sync"

	"github.com/paulmach/orb"
	"cosmogony/internal/zone"
)

// Cache is the GEOS-boundary cache of spec §5: a per-run, in-process map from
// zone index to its converted engine geometry, guarded by an RWMutex so
// concurrent readers (the inclusion engine, the typer's parallel pass) don't
// serialize on each other, with a write lock taken only to insert a miss.
// Cached entries are immutable once inserted, so the occasional duplicate
// conversion on a racing miss is harmless.
type Cache struct {
	mu sync.RWMutex
	m  map[zone.Index]Engine
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[zone.Index]Engine)}
}

// Get returns the cached engine geometry for id, converting and inserting it
// on first access. ok is false when the boundary could not be converted.
func (c *Cache) Get(id zone.Index, boundary orb.MultiPolygon) (Engine, bool) {
	c.mu.RLock()
	e, hit := c.m[id]
	c.mu.RUnlock()
	if hit {
		return e, e.ok
	}

	e, err := ToEngine(boundary)
	c.mu.Lock()
	c.m[id] = e
	c.mu.Unlock()
	return e, err == nil
}
