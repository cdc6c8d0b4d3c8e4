package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MATHDROP"

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultGrade          = 2
	DefaultLives          = 3
	DefaultAddr           = ":8080"
	DefaultEventRetention = 50000
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultTelemetry      = true
)

// Load reads configuration from configPath (if non-empty) and the
// environment. Environment variables take precedence over the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("game.grade", DefaultGrade)
	v.SetDefault("game.lives", DefaultLives)
	v.SetDefault("game.player_name", "")
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("database.path", "")
	v.SetDefault("database.event_retention", DefaultEventRetention)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("telemetry.enabled", DefaultTelemetry)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// MATHDROP_DB is the short form used by the store for the database path.
	if err := v.BindEnv("database.path", "MATHDROP_DATABASE_PATH", "MATHDROP_DB"); err != nil {
		return nil, fmt.Errorf("bind database path: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
