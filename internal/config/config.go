// Package config handles configuration loading for the service and CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
)

// Config represents the root configuration file structure.
type Config struct {
	// Used for projected pairs typed without zone or EPSG hint.
	FallbackProjection geo.ProjectionID `yaml:"fallback_projection" json:"fallback_projection"`
	Format             format.Options   `yaml:"format" json:"format"`
	Attribution        string           `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Examples           []string         `yaml:"examples,omitempty" json:"examples,omitempty"` // sample inputs shown on the lookup page
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		FallbackProjection: geo.EPSG25833,
		Examples: []string{
			"59.91273, 10.74609",
			`59°54'45.8"N 10°44'45.9"E`,
			"425917 7730314@25833",
			"Sone 32V Ø 597642 N 6642976",
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("Configuration file not found, using defaults")
		return Default(), nil
	}
	return cfg, err
}

// Validate checks value ranges that the YAML decoder cannot.
func (c *Config) Validate() error {
	if c.FallbackProjection != 0 && !c.FallbackProjection.Valid() {
		return fmt.Errorf("fallback_projection: unsupported projection %d", int(c.FallbackProjection))
	}
	if c.Format.Decimals < 0 || c.Format.Decimals > format.MaxDecimals {
		return fmt.Errorf("format.decimals: %d is outside 0..%d", c.Format.Decimals, format.MaxDecimals)
	}
	if c.Format.ForceEPSG != 0 && geo.ForEPSG(c.Format.ForceEPSG) == nil {
		return fmt.Errorf("format.force_epsg: unsupported EPSG code %d", c.Format.ForceEPSG)
	}
	return nil
}
