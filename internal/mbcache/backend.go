package mbcache

import (
	"errors"

	"github.com/dramaseed/dramaseed-server/internal/store"
)

// cacheKey is the single store key holding the serialized entries.
var cacheKey = []byte("cache:name-to-mbid")

// StoreBackend persists cache entries in the embedded database.
type StoreBackend struct {
	store *store.Store
}

// NewStoreBackend creates a backend over the given store.
func NewStoreBackend(s *store.Store) *StoreBackend {
	return &StoreBackend{store: s}
}

// Load reads the persisted entries. A missing key yields an empty set.
func (b *StoreBackend) Load() (Entries, error) {
	var entries Entries
	err := b.store.Get(cacheKey, &entries)
	if errors.Is(err, store.ErrKeyNotFound) {
		return Entries{}, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Store writes the entries, replacing what was persisted before.
func (b *StoreBackend) Store(entries Entries) error {
	return b.store.Set(cacheKey, entries)
}

// Clear removes the persisted entries.
func (b *StoreBackend) Clear() error {
	return b.store.Delete(cacheKey)
}
