package life

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("life: width and height must be positive")
	// ErrInvalidWorkers is returned when fewer than one worker is requested.
	ErrInvalidWorkers = errors.New("life: worker count must be at least 1")
	// ErrInvalidColor is returned for out-of-range color tuning values.
	ErrInvalidColor = errors.New("life: invalid color parameters")
)

const (
	maxJitter  = 127
	maxWorkers = 64

	seedChannelMin = 50
	seedChannelMax = 255
)

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	// Workers is the number of row bands computed concurrently per step.
	// One worker runs the update serially on the calling goroutine.
	Workers int

	// Colored selects the colored cell representation where newborns inherit
	// a blend of their parents' colors.
	Colored bool

	Seed int64

	// Jitter bounds the signed per-channel noise added to a newborn's
	// averaged color.
	Jitter int
	// Saturation is the HSV saturation every newborn color is forced to.
	Saturation float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1000,
		Height:     800,
		Workers:    4,
		Seed:       42,
		Jitter:     9,
		Saturation: 0.8,
	}
}

// Validate reports whether the configuration can build a simulation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Jitter < 0 || c.Jitter > maxJitter {
		return fmt.Errorf("%w: jitter %d outside [0,%d]", ErrInvalidColor, c.Jitter, maxJitter)
	}
	if !(c.Saturation >= 0 && c.Saturation <= 1) {
		return fmt.Errorf("%w: saturation %g outside [0,1]", ErrInvalidColor, c.Saturation)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["colored"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Colored = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= maxJitter {
			c.Jitter = parsed
		}
	}
	if v, ok := cfg["saturation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Saturation = parsed
		}
	}
	return c
}
