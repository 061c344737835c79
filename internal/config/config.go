package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings, parsed from environment variables.
type Config struct {
	// HTTPAddr is the listen address for the HTTP/WebSocket server.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3001"`

	Logging LoggingConfig `envPrefix:"LOG_"`
	Game    GameConfig    `envPrefix:"GAME_"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is the log encoder: "json" or "console".
	Format string `env:"FORMAT" envDefault:"console"`
}

// GameConfig holds rule knobs for the chamber game.
type GameConfig struct {
	// AllowSelfOpen permits the key holder to open a chamber from their own
	// hand. The published rule set does not forbid it, so it defaults to true;
	// tables that play the stricter convention can turn it off.
	AllowSelfOpen bool `env:"ALLOW_SELF_OPEN" envDefault:"true"`
	// RoomCodeLength is the number of characters in generated room codes.
	RoomCodeLength int `env:"ROOM_CODE_LENGTH" envDefault:"6"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config from environment: %w", err)
	}
	return cfg, nil
}
