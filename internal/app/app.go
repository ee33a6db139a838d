package app

import (
	"github.com/gin-gonic/gin"

	"github.com/takahiko217/stack-watcher/config"
	"github.com/takahiko217/stack-watcher/internal/api"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
	"github.com/takahiko217/stack-watcher/internal/openmeteo"
	"github.com/takahiko217/stack-watcher/internal/service"
	"github.com/takahiko217/stack-watcher/internal/yahoo"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router plus a cleanup function for graceful shutdown.
//
// Responsibilities:
//   - Builds the provider clients (Yahoo Finance chart API, Open-Meteo
//     archive API) from configuration.
//   - Constructs the three data services over the default catalogs.
//   - Creates the HTTP handler layer and the router with all middlewares.
//
// The services are constructed once here and passed by reference into the
// handlers; nothing in the stack holds per-request state.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	chart := yahoo.NewClientWithBaseURL(cfg.Providers.YahooBaseURL)
	archive := openmeteo.NewClientWithBaseURL(cfg.Providers.OpenMeteoBaseURL, cfg.Providers.WeatherTimeout)

	stocks := service.NewStockService(chart, models.DefaultStockListings(), nil)
	indices := service.NewIndexService(chart, models.DefaultIndexListings(), nil)
	weather := service.NewWeatherService(archive, models.DefaultLocations(), nil)

	handler := api.NewHandler(stocks, indices, weather)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	// No stateful resources to release; the hook stays for symmetry with
	// the shutdown path.
	cleanup := func() {}

	return router, cleanup, nil
}
