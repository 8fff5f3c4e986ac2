package config

import (
	"fmt"

	"github.com/alecthomas/kong"

	"go-splendor/engine"
)

// Config is the server's command line. Every flag falls back to an
// environment variable, which a .env file may provide.
type Config struct {
	Port       int    `help:"HTTP port to listen on." default:"3000" env:"PORT"`
	RedisAddr  string `name:"redis-addr" help:"Redis address for the action journal; empty keeps it in memory." env:"REDIS_ADDR"`
	RedisDB    int    `name:"redis-db" help:"Redis database number." default:"0" env:"REDIS_DB"`
	JWTSecret  string `name:"jwt-secret" help:"Secret signing identity cookies." default:"access-secret" env:"JWT_SECRET"`
	Debug      bool   `help:"Development logging and gin debug mode." env:"DEBUG"`
	Seed       uint64 `help:"Shuffle seed; 0 seeds from the clock." default:"0" env:"SEED"`
	MinPlayers int    `name:"min-players" help:"Players required before anyone may act (1 or 2)." default:"2" env:"MIN_PLAYERS"`
	Nobles     int    `help:"Nobles dealt per game (3 or 5)." default:"3" env:"NOBLES"`
}

// Parse reads args (without the program name) into a Config.
func Parse(args []string) (*Config, error) {
	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name("splendor"),
		kong.Description("Two-player Splendor server driven by text commands."),
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MinPlayers != 1 && c.MinPlayers != 2 {
		return fmt.Errorf("--min-players must be 1 or 2, got %d", c.MinPlayers)
	}
	if c.Nobles != 3 && c.Nobles != 5 {
		return fmt.Errorf("--nobles must be 3 or 5, got %d", c.Nobles)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("--jwt-secret must not be empty")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Settings are the defaults for games whose id carries no settings prefix.
func (c *Config) Settings() engine.Settings {
	return engine.Settings{MinPlayers: c.MinPlayers, Nobles: c.Nobles}
}
