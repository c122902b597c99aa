package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/dramaseed/dramaseed-server/internal/api"
	"github.com/dramaseed/dramaseed-server/internal/config"
	"github.com/dramaseed/dramaseed-server/internal/logger"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	cache := do.MustInvoke[*mbcache.Cache](i)

	sessionService := do.MustInvoke[*service.SessionService](i)
	seedService := do.MustInvoke[*service.SeedService](i)

	services := &api.Services{
		Sessions: sessionService,
		Seeds:    seedService,
		Cache:    cache,
	}

	handler := api.NewServer(services, Version, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
