package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abimael92/lol-survival-party/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Env  string `env:"ENV" envDefault:"development"` // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MinPlayers      int           `env:"MIN_PLAYERS" envDefault:"2"`
	RoomCodeLength  int           `env:"ROOM_CODE_LENGTH" envDefault:"6"`
	ReadTimer       time.Duration `env:"READ_TIMER" envDefault:"15s"`
	SubmitTimer     time.Duration `env:"SUBMIT_TIMER" envDefault:"45s"`
	ResolutionTimer time.Duration `env:"RESOLUTION_TIMER" envDefault:"20s"`
	VoteTimer       time.Duration `env:"VOTE_TIMER" envDefault:"45s"`
	ResultTimer     time.Duration `env:"RESULT_TIMER" envDefault:"15s"`
	CleanupGrace    time.Duration `env:"CLEANUP_GRACE" envDefault:"30s"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// Load reads configuration from the environment, preloading .env if present
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Settings converts the game config into domain settings
func (c *Config) Settings() domain.Settings {
	return domain.Settings{
		MinPlayers:      c.Game.MinPlayers,
		RoomCodeLength:  c.Game.RoomCodeLength,
		ReadTimer:       c.Game.ReadTimer,
		SubmitTimer:     c.Game.SubmitTimer,
		ResolutionTimer: c.Game.ResolutionTimer,
		VoteTimer:       c.Game.VoteTimer,
		ResultTimer:     c.Game.ResultTimer,
		CleanupGrace:    c.Game.CleanupGrace,
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
