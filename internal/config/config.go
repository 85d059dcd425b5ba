package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// Config holds all configuration for the application
type Config struct {
	// Table
	Players int `env:"BLACKJACK_PLAYERS" envDefault:"1"`
	Rounds  int `env:"BLACKJACK_ROUNDS" envDefault:"0"` // 0 asks after every round

	// Output
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
	NoColor  bool   `env:"NO_COLOR" envDefault:"false"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development" or "production"
}

// Load reads the configuration from a .env file, if present, and the
// environment
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit .env paths. Missing files are skipped;
// variables already set in the environment win over file values.
func LoadFiles(paths ...string) (*Config, error) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			// Only return error if file exists but couldn't be loaded
			if !os.IsNotExist(err) {
				return nil, types.WrapError(types.ErrConfigError, "error loading .env file", err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, types.WrapError(types.ErrConfigError, "failed to parse environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values are usable. The CLI calls it again after
// applying flag overrides.
func (c *Config) Validate() error {
	if c.Players < 1 {
		return types.WrapError(types.ErrNotEnoughPlayers, "at least one player is required",
			fmt.Errorf("got %d", c.Players))
	}
	if c.Players > blackjack.MaxPlayers {
		return types.WrapError(types.ErrTooManyPlayers, fmt.Sprintf("at most %d players can sit at a table", blackjack.MaxPlayers),
			fmt.Errorf("got %d", c.Players))
	}
	if c.Rounds < 0 {
		return types.WrapError(types.ErrConfigError, "rounds cannot be negative",
			fmt.Errorf("got %d", c.Rounds))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return types.WrapError(types.ErrConfigError, "invalid LOG_LEVEL", err)
	}
	return nil
}

// Level returns the parsed log level, INFO if it cannot be parsed
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
