// Package config loads runlog configuration from defaults, an optional TOML
// file, and RUNLOG_* environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/crimson-sun/runlog/internal/resultlog"
)

// Config holds all runlog configuration.
type Config struct {
	Consolidate ConsolidateConfig `toml:"consolidate"`
	Output      OutputConfig      `toml:"output"`
	Log         LogConfig         `toml:"log"`
}

// ConsolidateConfig controls the compaction pass.
type ConsolidateConfig struct {
	Enabled    bool `toml:"enabled"`
	GroupLimit int  `toml:"group_limit"`
}

// OutputConfig holds rendering destination settings.
type OutputConfig struct {
	Format   string `toml:"format"`   // console, json, csv, html, snapshot
	Path     string `toml:"path"`     // "" = stdout
	Fragment bool   `toml:"fragment"` // html only
	Color    string `toml:"color"`    // auto, on, off
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Consolidate: ConsolidateConfig{
			Enabled:    true,
			GroupLimit: resultlog.DefaultGroupLimit,
		},
		Output: OutputConfig{
			Format: "console",
			Color:  "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultFile is picked up from the working directory when no explicit
// config path is given.
const DefaultFile = "runlog.toml"

// Load builds the configuration. A non-empty path must name a TOML file; an
// empty path falls back to DefaultFile if it exists. Environment variables
// override whatever the file set.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg.Output.Format = getenv("RUNLOG_FORMAT", cfg.Output.Format)
	cfg.Output.Path = getenv("RUNLOG_OUT", cfg.Output.Path)
	cfg.Output.Color = getenv("RUNLOG_COLOR", cfg.Output.Color)
	cfg.Log.Level = getenv("RUNLOG_LOG_LEVEL", cfg.Log.Level)
	cfg.Consolidate.GroupLimit = getenvInt("RUNLOG_GROUP_LIMIT", cfg.Consolidate.GroupLimit)
	if v := os.Getenv("RUNLOG_CONSOLIDATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: RUNLOG_CONSOLIDATE=%q: %w", v, err)
		}
		cfg.Consolidate.Enabled = b
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validFormats = map[string]bool{
	"console": true, "json": true, "csv": true, "html": true, "snapshot": true,
}

var validColors = map[string]bool{"auto": true, "on": true, "off": true}

// Validate checks enum fields and numeric ranges, reporting every problem
// at once.
func (c Config) Validate() error {
	var errs []error
	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Errorf("config: unknown output format %q", c.Output.Format))
	}
	if !validColors[c.Output.Color] {
		errs = append(errs, fmt.Errorf("config: color must be auto, on or off, got %q", c.Output.Color))
	}
	if c.Consolidate.GroupLimit < 1 {
		errs = append(errs, fmt.Errorf("config: group_limit must be positive, got %d", c.Consolidate.GroupLimit))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
