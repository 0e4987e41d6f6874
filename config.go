package gizmo

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the host configuration read from the environment.
type Config struct {
	WindowWidth     int     `env:"GIZMO_WINDOW_WIDTH"     envDefault:"1280"`
	WindowHeight    int     `env:"GIZMO_WINDOW_HEIGHT"    envDefault:"720"`
	WindowTitle     string  `env:"GIZMO_WINDOW_TITLE"     envDefault:"Gizmo"`
	SpeedMultiplier float32 `env:"GIZMO_SPEED_MULTIPLIER" envDefault:"1"`
	Debug           bool    `env:"GIZMO_DEBUG"`
	LogPrefix       string  `env:"GIZMO_LOG_PREFIX"       envDefault:"gizmo"`
	// PresetPath is an optional YAML scene preset to load at startup.
	PresetPath string `env:"GIZMO_PRESET"`
}

// LoadConfig parses GIZMO_* variables over the defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.SpeedMultiplier <= 0 {
		return fmt.Errorf("%w: speed multiplier %v", ErrInvalidConfig, cfg.SpeedMultiplier)
	}
	return nil
}
