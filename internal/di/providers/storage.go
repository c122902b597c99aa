package providers

import (
	"github.com/samber/do/v2"

	"github.com/dramaseed/dramaseed-server/internal/config"
	"github.com/dramaseed/dramaseed-server/internal/logger"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	s, err := store.New(cfg.Storage.DataPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database opened", "path", cfg.Storage.DataPath)

	return &StoreHandle{Store: s}, nil
}

// ProvideLookupCache provides the name-to-identifier lookup cache, loaded
// from storage. A missing cache record starts the cache empty.
func ProvideLookupCache(i do.Injector) (*mbcache.Cache, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	cache := mbcache.New(mbcache.NewStoreBackend(storeHandle.Store))
	if err := cache.Load(); err != nil {
		return nil, err
	}

	log.Info("Lookup cache loaded")

	return cache, nil
}
