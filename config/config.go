// Package config loads runtime settings: built-in defaults, then an optional
// YAML file, then VALENTINE_* environment variables. Command-line flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/valentine/parameter"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "VALENTINE_"

// Color modes accepted by Render.Color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds all runtime settings
type Config struct {
	Audio  AudioConfig  `yaml:"audio" envPrefix:"AUDIO_"`
	Render RenderConfig `yaml:"render" envPrefix:"RENDER_"`

	// Seed for the random source, 0 draws one from the clock
	Seed uint64 `yaml:"seed" env:"SEED"`

	// Debug enables file logging
	Debug  bool   `yaml:"debug" env:"DEBUG"`
	LogDir string `yaml:"log_dir" env:"LOG_DIR"`
}

// AudioConfig configures the music player
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Path    string  `yaml:"path" env:"PATH"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
	Loop    bool    `yaml:"loop" env:"LOOP"`
}

// RenderConfig configures the terminal renderer
type RenderConfig struct {
	FPS   int    `yaml:"fps" env:"FPS"`
	Color string `yaml:"color" env:"COLOR"`
	Mouse bool   `yaml:"mouse" env:"MOUSE"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.MusicVolume,
			Loop:    parameter.MusicLoop,
		},
		Render: RenderConfig{
			FPS:   parameter.DefaultFPS,
			Color: ColorAuto,
			Mouse: true,
		},
		LogDir: "logs",
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "valentine.yaml")
	}
	return filepath.Join(dir, "valentine", "config.yaml")
}

// Load builds the configuration from defaults, the file at path and the environment
// A missing file is not an error; an unreadable or malformed one is
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume)
	}
	if c.Render.FPS < parameter.MinFPS || c.Render.FPS > parameter.MaxFPS {
		return fmt.Errorf("render.fps must be within [%d,%d], got %d", parameter.MinFPS, parameter.MaxFPS, c.Render.FPS)
	}
	switch c.Render.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("render.color must be one of auto, truecolor, 256, got %q", c.Render.Color)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
