// SPDX-License-Identifier: MIT

// Package config loads matrixtools settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixtools/format"
	"github.com/katalvlaran/matrixtools/matrix"
	"github.com/katalvlaran/matrixtools/screen"
)

// Environment variables read by Load.
const (
	EnvPrecision = "MATRIXTOOLS_PRECISION"
	EnvMaxSize   = "MATRIXTOOLS_MAX_SIZE"
	EnvLogLevel  = "MATRIXTOOLS_LOG_LEVEL"
	EnvWorkers   = "MATRIXTOOLS_WORKERS"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all matrixtools settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Limits  LimitsConfig  `yaml:"limits"`
	Numeric NumericConfig `yaml:"numeric"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls printed output.
type DisplayConfig struct {
	Precision     int  `yaml:"precision"`
	SuppressSmall bool `yaml:"suppress_small"`
}

// LimitsConfig bounds user input.
type LimitsConfig struct {
	MaxSize int `yaml:"max_size"`
}

// NumericConfig tunes the solvers.
type NumericConfig struct {
	Epsilon   float64 `yaml:"epsilon"`
	Symmetric bool    `yaml:"symmetric"` // use the symmetric solver when the input allows
}

// BatchConfig configures the batch runner.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{Precision: format.DefaultPrecision},
		Limits:  LimitsConfig{MaxSize: screen.DefaultMaxSize},
		Numeric: NumericConfig{Epsilon: matrix.DefaultEpsilon},
		Batch:   BatchConfig{Workers: 4},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file yields the defaults (with overrides).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal returns the YAML form.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvPrecision); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPrecision, v, ErrInvalid)
		}
		c.Display.Precision = n
	}
	if v := os.Getenv(EnvMaxSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxSize, v, ErrInvalid)
		}
		c.Limits.MaxSize = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalid)
		}
		c.Batch.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks ranges so that option constructors never panic on
// configured values.
func (c *Config) Validate() error {
	switch {
	case c.Display.Precision < 0 || c.Display.Precision > format.MaxPrecision:
		return fmt.Errorf("display.precision %d not in [0, %d]: %w",
			c.Display.Precision, format.MaxPrecision, ErrInvalid)
	case c.Limits.MaxSize < 1:
		return fmt.Errorf("limits.max_size %d < 1: %w", c.Limits.MaxSize, ErrInvalid)
	case c.Numeric.Epsilon < 0 || math.IsNaN(c.Numeric.Epsilon) || math.IsInf(c.Numeric.Epsilon, 0):
		return fmt.Errorf("numeric.epsilon %g: %w", c.Numeric.Epsilon, ErrInvalid)
	case c.Batch.Workers < 1:
		return fmt.Errorf("batch.workers %d < 1: %w", c.Batch.Workers, ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}

	return nil
}

// ScreenOptions maps the settings onto screen options.
func (c *Config) ScreenOptions() []screen.Option {
	return []screen.Option{
		screen.WithMaxSize(c.Limits.MaxSize),
		screen.WithPrecision(c.Display.Precision),
		screen.WithSuppressSmall(c.Display.SuppressSmall),
		screen.WithSymmetric(c.Numeric.Symmetric),
		screen.WithEpsilon(c.Numeric.Epsilon),
	}
}
