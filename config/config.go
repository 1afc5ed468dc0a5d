// Package config loads application configuration with viper.
//
// Configuration covers only the process surface (HTTP binding, CORS,
// logging, optional table override file). The calendar tables themselves
// are JSON parsed by the factory package; this package just points at the
// override file when one is configured.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Tables TablesConfig `mapstructure:"tables"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TablesConfig points at an optional JSON override for the calendar
// tables. Empty means the embedded company defaults.
type TablesConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load loads configuration from file. An empty path falls back to the
// standard search locations; a missing file is not an error, defaults
// apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.leave-planner")
		v.AddConfigPath("/etc/leave-planner")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Tables.File != "" {
		if _, err := os.Stat(c.Tables.File); err != nil {
			return fmt.Errorf("tables.file: %w", err)
		}
	}
	return nil
}
