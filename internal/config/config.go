// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package config loads the rendering settings of the mona command.
//
// Settings are layered: built-in defaults, then an optional TOML file, then
// MONA_* environment variables (MONA_X_SCALE=10 sets x_scale).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "MONA_"

// Config holds the settings of one rendering run.
type Config struct {
	// Table is a rule file path or a built-in table name.
	Table      string `koanf:"table"`
	XScale     int    `koanf:"x_scale"`
	YScale     int    `koanf:"y_scale"`
	FontFamily string `koanf:"font_family"`
	FontSize   int    `koanf:"font_size"`
	TabWidth   int    `koanf:"tab_width"`
	// Workers bounds the matching goroutines; 0 means GOMAXPROCS.
	Workers int `koanf:"workers"`
	// NoBlur disables the drop shadow of closed shapes.
	NoBlur bool `koanf:"no_blur"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"table":       "default",
		"x_scale":     8,
		"y_scale":     13,
		"font_family": "monospace",
		"font_size":   13,
		"tab_width":   8,
		"workers":     0,
		"no_blur":     false,
	}
}

// Load merges the defaults, the TOML file at path (skipped when path is
// empty) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that cannot produce a drawing.
func (c *Config) Validate() error {
	if c.XScale <= 0 || c.YScale <= 0 {
		return fmt.Errorf("invalid scale %d,%d: both must be positive", c.XScale, c.YScale)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %d", c.FontSize)
	}
	if c.TabWidth < 0 || c.Workers < 0 {
		return fmt.Errorf("tab_width and workers must not be negative")
	}
	if c.Table == "" {
		return fmt.Errorf("no rule table configured")
	}
	return nil
}
