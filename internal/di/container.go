// Package di provides dependency injection configuration for the DramaSeed server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/dramaseed/dramaseed-server/internal/config"
	"github.com/dramaseed/dramaseed-server/internal/di/providers"
	"github.com/dramaseed/dramaseed-server/internal/logger"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
	"github.com/dramaseed/dramaseed-server/internal/service"
	"github.com/dramaseed/dramaseed-server/internal/sites"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideLookupCache)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalogClient)
	do.Provide(injector, providers.ProvideResolver)

	// Scraping layer
	do.Provide(injector, providers.ProvideScraper)

	// Business services
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideSeedService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*mbcache.Cache](injector)
	_ = do.MustInvoke[*providers.CatalogClientHandle](injector)
	_ = do.MustInvoke[*musicbrainz.Resolver](injector)
	_ = do.MustInvoke[*sites.Scraper](injector)

	// Business services
	_ = do.MustInvoke[*service.SessionService](injector)
	_ = do.MustInvoke[*service.SeedService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
