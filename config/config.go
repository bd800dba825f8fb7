// SPDX-License-Identifier: MIT

// Package config loads the beaconctl configuration from YAML.
//
// Example:
//
//	places: assets/places.xml
//	beacons:
//	  - assets/beacons/**/*.xml
//	  - assets/beacons/**/*.xml.zst
//	log_level: info
//	mirror_dedup: true
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration.
var (
	// ErrMissingPlaces indicates no places document was configured.
	ErrMissingPlaces = errors.New("config: places document is required")

	// ErrUnknownLogLevel indicates a log level outside debug|info|warn|error.
	ErrUnknownLogLevel = errors.New("config: unknown log level")
)

// Config holds the document locations and runtime switches.
type Config struct {
	// Places is the path of the places document.
	Places string `yaml:"places"`

	// Beacons lists glob patterns of beacon documents.
	Beacons []string `yaml:"beacons"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MirrorDedup skips an edge already registered from its other endpoint.
	MirrorDedup bool `yaml:"mirror_dedup"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:    "info",
		MirrorDedup: true,
	}
}

// Load reads a YAML file on top of Default() and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks required fields and the log level.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Places) == "" {
		return ErrMissingPlaces
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level. An empty level means info.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
}
