// Package config loads lcsdiff command defaults from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dacharyc/lcsdiff"
)

// FileName is the name of the config file inside the user config directory.
const FileName = "lcsdiff/config.toml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the defaults applied before command-line flags.
type Config struct {
	Context           int    `toml:"context"`
	Strategy          string `toml:"strategy"`
	Color             string `toml:"color"`
	IgnoreCase        bool   `toml:"ignore_case"`
	IgnoreSpaceChange bool   `toml:"ignore_space_change"`
	IgnoreAllSpace    bool   `toml:"ignore_all_space"`
	POSIXRanges       bool   `toml:"posix_ranges"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Context:  lcsdiff.DefaultContext,
		Strategy: lcsdiff.KuoCrossBinary.String(),
		Color:    ColorAuto,
	}
}

// DefaultPath returns the config file path in the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file at path over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that flags cannot correct on their own.
func (c *Config) Validate() error {
	if c.Context < 0 {
		return fmt.Errorf("context %d: %w", c.Context, lcsdiff.ErrNegativeContext)
	}
	if _, err := lcsdiff.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: want %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

// UseColor reports whether output should be colored, given whether it goes
// to a terminal.
func (c *Config) UseColor(isTTY bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// Options converts the configuration into lcsdiff options. Color is left to
// the caller, see UseColor.
func (c *Config) Options() ([]lcsdiff.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := lcsdiff.ParseStrategy(c.Strategy)
	return []lcsdiff.Option{
		lcsdiff.WithContext(c.Context),
		lcsdiff.WithStrategy(strategy),
		lcsdiff.WithIgnoreCase(c.IgnoreCase),
		lcsdiff.WithIgnoreSpaceChange(c.IgnoreSpaceChange),
		lcsdiff.WithIgnoreAllSpace(c.IgnoreAllSpace),
		lcsdiff.WithPOSIXRanges(c.POSIXRanges),
	}, nil
}
