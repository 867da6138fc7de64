// Package config loads tool configuration from a TOML file with
// environment overrides, and watches the file for live reload.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "REGEXPLORE_"

// Config is the full tool configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Engine  EngineConfig  `toml:"engine"`
	Samples SamplesConfig `toml:"samples"`
	Logging LoggingConfig `toml:"logging"`
}

// DisplayConfig controls the content area presentation.
type DisplayConfig struct {
	// Padding is the inner padding of the content area, 0..3.
	Padding int `toml:"padding"`

	// Wrap enables soft wrapping of long content lines.
	Wrap bool `toml:"wrap"`
}

// ThemeConfig holds colors as #rrggbb hex strings. Invalid values fall
// back to the defaults at theme build time rather than failing startup.
type ThemeConfig struct {
	// Highlights are the two alternating match colors. The second entry
	// is applied to the first match.
	Highlights []string `toml:"highlights"`

	// ErrorText colors error status messages.
	ErrorText string `toml:"error_text"`

	// Heading colors markup heading segments.
	Heading string `toml:"heading"`
}

// EngineConfig tunes the match engine.
type EngineConfig struct {
	// TimeoutMS bounds one search in milliseconds. Zero disables the
	// bound.
	TimeoutMS int `toml:"timeout_ms"`
}

// SamplesConfig points at optional user sample patterns.
type SamplesConfig struct {
	// LuaPath is a Lua script returning extra library entries. Empty
	// means builtins only.
	LuaPath string `toml:"lua_path"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the builtin configuration: cyan/yellow highlights as
// in the reference tool, a two second search bound, info logging.
func Default() Config {
	return Config{
		Display: DisplayConfig{Padding: 1, Wrap: true},
		Theme: ThemeConfig{
			Highlights: []string{"#00ffff", "#ffff00"},
			ErrorText:  "#ff0000",
			Heading:    "#87d7ff",
		},
		Engine:  EngineConfig{TimeoutMS: 2000},
		Samples: SamplesConfig{},
		Logging: LoggingConfig{Level: "info"},
	}
}

// applyEnv overlays REGEXPLORE_* environment variables onto cfg.
// Unparseable numeric values are reported, not silently dropped.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SAMPLES_LUA"); ok {
		cfg.Samples.LuaPath = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PADDING"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPADDING: %w", EnvPrefix, err)
		}
		cfg.Display.Padding = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "TIMEOUT_MS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT_MS: %w", EnvPrefix, err)
		}
		cfg.Engine.TimeoutMS = n
	}
	return nil
}

// normalize clamps values to usable ranges.
func normalize(cfg *Config) {
	if cfg.Display.Padding < 0 {
		cfg.Display.Padding = 0
	}
	if cfg.Display.Padding > 3 {
		cfg.Display.Padding = 3
	}
	if cfg.Engine.TimeoutMS < 0 {
		cfg.Engine.TimeoutMS = 0
	}
	if len(cfg.Theme.Highlights) < 2 {
		cfg.Theme.Highlights = Default().Theme.Highlights
	}
}
