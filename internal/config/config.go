// Package config loads the screensaver's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. KNOT_WIDTH.
const Prefix = "KNOT"

type Config struct {
	Width         float64       `envconfig:"WIDTH" default:"800"`
	Height        float64       `envconfig:"HEIGHT" default:"600"`
	Density       int           `envconfig:"DENSITY" default:"35"`
	Blend         float64       `envconfig:"BLEND" default:"1.0"`
	MaxSpeed      float64       `envconfig:"MAX_SPEED" default:"2"`
	FrameInterval time.Duration `envconfig:"FRAME_INTERVAL" default:"16ms"`
	Seed          uint64        `envconfig:"SEED" default:"0"`
	LogFile       string        `envconfig:"LOG_FILE"`
	LogLevel      slog.Level    `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	ErrBounds   = errors.New("bounds must have a positive width and height")
	ErrDensity  = errors.New("density must be at least 1")
	ErrInterval = errors.New("frame interval must be positive")
	ErrSpeed    = errors.New("max speed must not be negative")
)

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %g×%g", ErrBounds, c.Width, c.Height))
	}
	if c.Density < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrDensity, c.Density))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrInterval, c.FrameInterval))
	}
	if c.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrSpeed, c.MaxSpeed))
	}
	return errors.Join(errs...)
}
