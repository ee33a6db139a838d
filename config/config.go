package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	ALLOWED_ORIGINS=http://localhost:3000
//	YAHOO_BASE_URL=https://query1.finance.yahoo.com
//	OPENMETEO_BASE_URL=https://archive-api.open-meteo.com/v1/archive
//	WEATHER_TIMEOUT_SECONDS=10
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string   // TCP port the HTTP server listens on
	AllowedOrigins []string // CORS origins allowed to call the API
}

// ProvidersConfig holds the upstream data provider endpoints and timeouts.
type ProvidersConfig struct {
	YahooBaseURL     string        // Yahoo Finance chart API base URL
	OpenMeteoBaseURL string        // Open-Meteo archive API base URL
	WeatherTimeout   time.Duration // per-request timeout for the weather provider
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("OPENMETEO_BASE_URL", "https://archive-api.open-meteo.com/v1/archive")
	viper.SetDefault("WEATHER_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
		Providers: ProvidersConfig{
			YahooBaseURL:     viper.GetString("YAHOO_BASE_URL"),
			OpenMeteoBaseURL: viper.GetString("OPENMETEO_BASE_URL"),
			WeatherTimeout:   time.Duration(viper.GetInt("WEATHER_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	validateConfig()
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			origins = append(origins, s)
		}
	}
	return origins
}

// validateConfig terminates the application when required values are
// missing, so that misconfiguration fails at startup rather than on the
// first request.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Providers.YahooBaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if AppConfig.Providers.OpenMeteoBaseURL == "" {
		missing = append(missing, "OPENMETEO_BASE_URL")
	}
	if AppConfig.Providers.WeatherTimeout <= 0 {
		missing = append(missing, "WEATHER_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
