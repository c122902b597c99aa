// Package mbcache memoizes (entity type, name) to identifier mappings so
// repeated lookups and user corrections survive across sessions.
package mbcache

import (
	"context"
	"sync"
)

// Entries is the storage format: entity type to name to identifier.
type Entries map[string]map[string]string

// Backend persists the cache. Load and Store move the whole entry set at
// once; persistence only happens when the caller asks for it.
type Backend interface {
	Load() (Entries, error)
	Store(Entries) error
	Clear() error
}

// Resolver resolves a name to an identifier on a cache miss. An empty
// result means the name could not be resolved; nothing is cached then.
type Resolver func(ctx context.Context, entityType, name string) (string, error)

// Cache is the in-memory name to identifier map with optional persistence.
// Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries Entries
	backend Backend
}

// New creates a cache over the given backend. A nil backend yields a pure
// in-memory cache; Load, Store and Clear become no-ops on storage.
func New(backend Backend) *Cache {
	return &Cache{entries: Entries{}, backend: backend}
}

// Get returns the cached identifier for (entityType, name). On a miss it
// consults resolve (when non-nil), caches a non-empty result and returns
// it. A resolver failure is returned as is; nothing is cached.
func (c *Cache) Get(ctx context.Context, entityType, name string, resolve Resolver) (string, error) {
	if id, ok := c.Lookup(entityType, name); ok {
		return id, nil
	}
	if resolve == nil {
		return "", nil
	}

	id, err := resolve(ctx, entityType, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		c.Set(entityType, name, id)
	}
	return id, nil
}

// Lookup is a pure cache read.
func (c *Cache) Lookup(entityType, name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.entries[entityType][name]
	return id, ok && id != ""
}

// Set writes an identifier, overwriting any previous value for the key.
func (c *Cache) Set(entityType, name, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[entityType] == nil {
		c.entries[entityType] = map[string]string{}
	}
	c.entries[entityType][name] = id
}

// Load replaces the in-memory entries with the persisted ones.
func (c *Cache) Load() error {
	if c.backend == nil {
		return nil
	}
	entries, err := c.backend.Load()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = Entries{}
	}
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}

// Store persists the current entries.
func (c *Cache) Store() error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Store(c.Snapshot())
}

// Clear drops all entries, in memory and in storage.
func (c *Cache) Clear() error {
	c.mu.Lock()
	c.entries = Entries{}
	c.mu.Unlock()
	if c.backend == nil {
		return nil
	}
	return c.backend.Clear()
}

// Snapshot returns a deep copy of the current entries.
func (c *Cache) Snapshot() Entries {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(Entries, len(c.entries))
	for entityType, names := range c.entries {
		m := make(map[string]string, len(names))
		for name, id := range names {
			m[name] = id
		}
		out[entityType] = m
	}
	return out
}
