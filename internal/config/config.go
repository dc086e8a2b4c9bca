// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	TickRate    int            `yaml:"tick_rate"`
	ChangeProbe string         `yaml:"change_probe"`
	Autoplay    AutoplayConfig `yaml:"autoplay"`
	Log         LogConfig      `yaml:"log"`
}

// AutoplayConfig controls automatic play, interactive and headless.
type AutoplayConfig struct {
	IntervalTicks int    `yaml:"interval_ticks"`
	Strategy      string `yaml:"strategy"`
	MaxMoves      int    `yaml:"max_moves"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Known option values.
var (
	probes     = []string{"sum", "exact"}
	strategies = []string{"greedy", "random"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if !oneOf(c.ChangeProbe, probes) {
		return fmt.Errorf("%w: change_probe %q (want one of %v)", ErrInvalid, c.ChangeProbe, probes)
	}
	if c.Autoplay.IntervalTicks <= 0 {
		return fmt.Errorf("%w: autoplay.interval_ticks must be positive, got %d", ErrInvalid, c.Autoplay.IntervalTicks)
	}
	if !oneOf(c.Autoplay.Strategy, strategies) {
		return fmt.Errorf("%w: autoplay.strategy %q (want one of %v)", ErrInvalid, c.Autoplay.Strategy, strategies)
	}
	if c.Autoplay.MaxMoves < 0 {
		return fmt.Errorf("%w: autoplay.max_moves must not be negative, got %d", ErrInvalid, c.Autoplay.MaxMoves)
	}
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("%w: log.level %q (want one of %v)", ErrInvalid, c.Log.Level, logLevels)
	}
	return nil
}

// AutoplayInterval returns the wall-clock time between automatic moves.
func (c Config) AutoplayInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Duration(c.Autoplay.IntervalTicks) * time.Second / time.Duration(c.TickRate)
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
