package providers

import (
	"github.com/samber/do/v2"

	"github.com/dramaseed/dramaseed-server/internal/config"
	"github.com/dramaseed/dramaseed-server/internal/logger"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
	"github.com/dramaseed/dramaseed-server/internal/service"
	"github.com/dramaseed/dramaseed-server/internal/sites"
)

// Version is the application version, overridable at build time.
var Version = "1.0.0"

// CatalogClientHandle wraps the catalog client with shutdown capability.
type CatalogClientHandle struct {
	*musicbrainz.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideCatalogClient provides the rate-limited catalog API client.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := musicbrainz.NewClient(
		cfg.MusicBrainz.BaseURL,
		cfg.MusicBrainz.UserAgent,
		cfg.MusicBrainz.RateInterval,
		cfg.MusicBrainz.QueueSize,
		log.Logger,
	)

	log.Info("Catalog client initialized",
		"base_url", cfg.MusicBrainz.BaseURL,
		"rate_interval", cfg.MusicBrainz.RateInterval,
	)

	return &CatalogClientHandle{Client: client}, nil
}

// ProvideResolver provides the identifier resolver.
func ProvideResolver(i do.Injector) (*musicbrainz.Resolver, error) {
	clientHandle := do.MustInvoke[*CatalogClientHandle](i)
	return musicbrainz.NewResolver(clientHandle.Client), nil
}

// ProvideScraper provides the release page scraper with the built-in site
// templates.
func ProvideScraper(i do.Injector) (*sites.Scraper, error) {
	return sites.NewScraper(sites.NewRegistry()), nil
}

// ProvideSessionService provides the mapping session service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	scraper := do.MustInvoke[*sites.Scraper](i)
	resolver := do.MustInvoke[*musicbrainz.Resolver](i)
	cache := do.MustInvoke[*mbcache.Cache](i)

	return service.NewSessionService(scraper, resolver, cache, cfg.Session.TTL, log.Logger), nil
}

// ProvideSeedService provides the seed building service.
func ProvideSeedService(i do.Injector) (*service.SeedService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	sessions := do.MustInvoke[*service.SessionService](i)

	return service.NewSeedService(sessions, cfg.MusicBrainz.BaseURL, Version), nil
}
