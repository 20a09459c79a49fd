// Package config loads converter settings from the environment.
package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	LogLevel        string
	DefaultCurrency string
	OutputFormat    string // csv, xlsx or json
	IncludeHeader   bool   // metadata header rows in CSV output
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_CURRENCY", "CNY")
	v.SetDefault("OUTPUT_FORMAT", "xlsx")
	v.SetDefault("INCLUDE_HEADER", true)

	v.SetEnvPrefix("BANKTXT")
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DefaultCurrency: v.GetString("DEFAULT_CURRENCY"),
		OutputFormat:    v.GetString("OUTPUT_FORMAT"),
		IncludeHeader:   v.GetBool("INCLUDE_HEADER"),
	}

	switch cfg.OutputFormat {
	case "csv", "xlsx", "json":
	default:
		cfg.OutputFormat = "xlsx"
	}

	return cfg, nil
}
