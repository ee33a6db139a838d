package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/takahiko217/stack-watcher/internal/middleware"
)

// NewRouter creates a Gin engine with all routes configured. It receives a
// Handler instance with the data services already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery,
//     ErrorHandler, RateLimiter, CORS).
//   - Adds request timeout handling (15 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the API v1 routes plus the legacy root endpoints.
func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		middleware.CORS(allowedOrigins),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Root endpoints ───────────────────────────
	router.GET("/", handler.Welcome)
	router.GET("/health", handler.Health)
	router.GET("/api/hello", handler.Hello)

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.Health)
		v1.GET("/demo", handler.Demo)

		v1.GET("/stocks", handler.GetStocks)
		v1.GET("/stocks/symbols", handler.GetStockSymbols)
		v1.GET("/stocks/:symbol", handler.GetStock)

		v1.GET("/indices", handler.GetIndices)
		v1.GET("/indices/available", handler.GetAvailableIndices)
		v1.GET("/indices/:symbol", handler.GetIndex)

		v1.GET("/weather", handler.GetWeather)
		v1.GET("/weather/locations", handler.GetWeatherLocations)
	}

	return router
}
