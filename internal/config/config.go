// Package config holds the pixfx command configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml"
)

// Config is the command configuration, read from a TOML file and overridden
// by flags.
type Config struct {
	Main   Main   `toml:"main"`
	Engine Engine `toml:"engine"`
	Output Output `toml:"output"`
}

// Main holds general settings.
type Main struct {
	LogLevel string `toml:"log_level"`
}

// Engine holds filter engine settings.
type Engine struct {
	Workers           int `toml:"workers"`
	ParallelThreshold int `toml:"parallel_threshold"`
}

// Output holds encoding settings for written images.
type Output struct {
	Format      string `toml:"format"`
	JPEGQuality int    `toml:"jpeg_quality"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Main: Main{
			LogLevel: "info",
		},
		Engine: Engine{
			Workers:           runtime.NumCPU(),
			ParallelThreshold: 256 * 256,
		},
		Output: Output{
			Format:      "png",
			JPEGQuality: 95,
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer fd.Close()

	if err := Decode(fd, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg, keeping the values of keys r omits.
func Decode(r io.Reader, cfg *Config) error {
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Main.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("config: engine.workers must be >= 0, got %d", c.Engine.Workers))
	}
	if c.Output.JPEGQuality < 0 || c.Output.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("config: output.jpeg_quality must be in [0, 100], got %d", c.Output.JPEGQuality))
	}
	return errors.Join(errs...)
}

// Level returns the slog level named by LogLevel.
func (m Main) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(m.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: main.log_level: %w", err)
	}
	return lvl, nil
}
