package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/iexpulse/config"
	"github.com/guttosm/iexpulse/internal/api"
	"github.com/guttosm/iexpulse/internal/service"
	"github.com/guttosm/iexpulse/stock"
)

// transportBuilder is an indirection for unit testing; defaults to the real
// HTTP transport over the configured base URL.
var transportBuilder = func(cfg config.Config) stock.Transport {
	return stock.NewAPITransport(cfg.IEX.BaseURL, cfg.IEX.Token, cfg.IEX.Timeout())
}

// upstreamPinger is an indirection for unit testing; defaults to an HTTP HEAD
// against the configured base URL.
var upstreamPinger = func(cfg config.Config) func() error {
	client := &http.Client{Timeout: cfg.IEX.Timeout()}
	return func() error {
		res, err := client.Head(cfg.IEX.BaseURL)
		if err != nil {
			return err
		}
		_ = res.Body.Close()
		return nil
	}
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream API transport from configuration.
//   - Initializes the service layer (MarketService).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream API transport
	transport := transportBuilder(cfg)

	// Initialize service layer (business logic)
	svc := service.NewMarketService(transport)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(upstreamPinger(cfg))
	healthHandler.Register(router)

	// Cleanup resources on shutdown; the transport holds only pooled
	// connections, which the process teardown releases.
	cleanup := func() {}

	return router, cleanup, nil
}
