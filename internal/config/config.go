// Package config loads application settings from an env file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config directory and overridden by environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	MapsAPIKey      string        `mapstructure:"MAPS_API_KEY"`
	MapsAPIURL      string        `mapstructure:"MAPS_API_URL"`
	WolframAppID    string        `mapstructure:"WOLFRAM_APP_ID"`
	WolframAPIURL   string        `mapstructure:"WOLFRAM_API_URL"`
	CatalogSource   string        `mapstructure:"CATALOG_SOURCE"`
	CatalogPath     string        `mapstructure:"CATALOG_PATH"`
	ValkeyAddr      string        `mapstructure:"VALKEY_ADDR"`
	GeocodeCacheTTL time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`
	HTTPTimeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogPretty       bool          `mapstructure:"LOG_PRETTY"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    "0.0.0.0:8080",
	"DB_SOURCE":         "",
	"MAPS_API_KEY":      "",
	"MAPS_API_URL":      "https://maps.googleapis.com/maps/api/geocode/json",
	"WOLFRAM_APP_ID":    "",
	"WOLFRAM_API_URL":   "http://api.wolframalpha.com/v2/query",
	"CATALOG_SOURCE":    CatalogSourceFile,
	"CATALOG_PATH":      "data.out",
	"VALKEY_ADDR":       "",
	"GEOCODE_CACHE_TTL": 24 * time.Hour,
	"HTTP_TIMEOUT":      15 * time.Second,
	"LOG_LEVEL":         "info",
	"LOG_PRETTY":        false,
}

// LoadConfig reads configuration from path/app.env (optional) and the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// Registering a default for every key lets AutomaticEnv reach Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks that required settings are present and consistent.
func (c Config) Validate() error {
	var errs []string

	if c.ServerAddress == "" {
		errs = append(errs, "SERVER_ADDRESS is required")
	}
	if c.MapsAPIKey == "" {
		errs = append(errs, "MAPS_API_KEY is required")
	}
	if c.WolframAppID == "" {
		errs = append(errs, "WOLFRAM_APP_ID is required")
	}

	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			errs = append(errs, "CATALOG_PATH is required when CATALOG_SOURCE=file")
		}
	case CatalogSourcePostgres:
		if c.DBSource == "" {
			errs = append(errs, "DB_SOURCE is required when CATALOG_SOURCE=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceFile, CatalogSourcePostgres, c.CatalogSource))
	}

	if c.HTTPTimeout <= 0 {
		errs = append(errs, "HTTP_TIMEOUT must be positive")
	}
	if c.ValkeyAddr != "" && c.GeocodeCacheTTL <= 0 {
		errs = append(errs, "GEOCODE_CACHE_TTL must be positive when VALKEY_ADDR is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
