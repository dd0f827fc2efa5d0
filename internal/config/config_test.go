// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.False(t, cfg.Display.SuppressSmall)
	assert.Equal(t, 10, cfg.Limits.MaxSize)
	assert.Equal(t, 1e-9, cfg.Numeric.Epsilon)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.ScreenOptions(), 5)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrixtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  precision: 6\nnumeric:\n  symmetric: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Display.Precision)
	assert.True(t, cfg.Numeric.Symmetric)
	assert.Equal(t, 10, cfg.Limits.MaxSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("display: [unclosed"), 0o644))
	_, err := Load(bad)
	require.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("limits:\n  max_size: 0\n"), 0o644))
	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Load(dir)
	require.ErrorContains(t, err, "failed to read config")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "matrixtools.yaml")
	cfg := DefaultConfig()
	cfg.Display.SuppressSmall = true
	cfg.Batch.Workers = 2
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("numbers and level", func(t *testing.T) {
		t.Setenv(EnvPrecision, "2")
		t.Setenv(EnvMaxSize, "5")
		t.Setenv(EnvWorkers, "8")
		t.Setenv(EnvLogLevel, "warn")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Display.Precision)
		assert.Equal(t, 5, cfg.Limits.MaxSize)
		assert.Equal(t, 8, cfg.Batch.Workers)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("env beats file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  precision: 6\n"), 0o644))
		t.Setenv(EnvPrecision, "3")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Display.Precision)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, key := range []string{EnvPrecision, EnvMaxSize, EnvWorkers} {
			t.Setenv(key, "many")
			cfg := &Config{}
			require.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalid, key)
			t.Setenv(key, "")
		}
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative precision": func(c *Config) { c.Display.Precision = -1 },
		"huge precision":     func(c *Config) { c.Display.Precision = 18 },
		"zero max size":      func(c *Config) { c.Limits.MaxSize = 0 },
		"negative epsilon":   func(c *Config) { c.Numeric.Epsilon = -1e-9 },
		"zero workers":       func(c *Config) { c.Batch.Workers = 0 },
		"unknown level":      func(c *Config) { c.Logging.Level = "verbose" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
