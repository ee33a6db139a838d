package main

//
//  @title           Stack Watcher API
//  @version         1.0
//  @description     Market index, stock price and weather time-series aggregation service.
//  @contact.name    API Support
//  @contact.url     https://github.com/takahiko217/stack-watcher
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Daily OHLCV series for the supported Japanese stocks
//
//  @tag.name        indices
//  @tag.description Daily closing-level series for the supported market indices
//
//  @tag.name        weather
//  @tag.description Daily precipitation, temperature and pressure series
//
//  @tag.name        health
//  @tag.description Liveness and demo endpoints

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/takahiko217/stack-watcher/config"
	_ "github.com/takahiko217/stack-watcher/docs" // swagger docs
	"github.com/takahiko217/stack-watcher/internal/app"
	"github.com/takahiko217/stack-watcher/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine and returns the server instance for the shutdown path.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup
// callback when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stack-watcher API server.
//
// Flags:
//   - --port: Port for the HTTP server. Defaults to SERVER_PORT from config.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
