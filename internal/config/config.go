// Package config loads application settings from an optional YAML file and
// MATHDROP_ environment variables.
package config

// Config holds all application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GameConfig contains gameplay settings.
type GameConfig struct {
	Grade      int    `mapstructure:"grade" validate:"gte=2,lte=5"`
	Lives      int    `mapstructure:"lives" validate:"gte=1,lte=9"`
	PlayerName string `mapstructure:"player_name" validate:"max=20"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// DatabaseConfig contains storage settings.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty means the default data directory.
	Path string `mapstructure:"path"`

	// EventRetention is how many game events to keep when pruning.
	// Zero disables pruning.
	EventRetention int `mapstructure:"event_retention" validate:"gte=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// TelemetryConfig controls anonymous gameplay analytics.
type TelemetryConfig struct {
	// Enabled records game events to the local store. When false no events
	// are written.
	Enabled bool `mapstructure:"enabled"`
}
