package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration, read from MINDMESH_* environment
// variables. CLI flags in cmd override whatever the environment set.
type Config struct {
	// FPS is the render tick rate
	FPS int `env:"FPS" envDefault:"30"`

	// Agents is the number of simulated agents in the demo feed
	Agents int `env:"AGENTS" envDefault:"8"`

	// Seed drives the demo feed; 0 means derive from wall clock
	Seed int64 `env:"SEED" envDefault:"0"`

	// ColorMode selects terminal color handling: auto, truecolor, 256
	ColorMode string `env:"COLOR_MODE" envDefault:"auto"`

	// Audio enables synthesized event cues
	Audio bool `env:"AUDIO" envDefault:"false"`

	// LogFile receives structured logs; empty disables logging entirely
	// (a TUI cannot log to stdout without corrupting the display)
	LogFile string `env:"LOG_FILE" envDefault:""`
}

// Load parses the environment and validates ranges.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MINDMESH_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps out of range [1,120]: %d", c.FPS)
	}
	if c.Agents < 1 || c.Agents > 256 {
		return fmt.Errorf("agent count out of range [1,256]: %d", c.Agents)
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	return nil
}
