// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development and tests.
	Development Environment = "development"
	// Production is for nodes decoding untrusted network input.
	Production Environment = "production"
)

// Bounds enforced by the CBOR decoder. Values outside these ranges
// are rejected by fxamacker/cbor when the decoding mode is built, so
// Validate reports them up front with the offending key.
const (
	MinNestedLevels   = 4
	MaxNestedLevels   = 65535
	MinArrayElements  = 16
	MaxArrayElements  = 2147483647
	MinMapPairs       = 16
	MaxMapPairs       = 2147483647
	defaultNesting    = 32
	defaultCollection = 131072
)

// Config is the master configuration for the ledger codec.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment" json:"environment"`

	// Decode bounds the resources a single decode may consume.
	Decode DecodeLimits `yaml:"decode" json:"decode"`

	// Environment overrides, applied after the base config is loaded.
	Development *DecodeOverrides `yaml:"development,omitempty" json:"development,omitempty"`
	Production  *DecodeOverrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// DecodeOverrides contains the decode limits that can be overridden
// per environment. A nil field keeps the base value.
type DecodeOverrides struct {
	MaxNestedLevels        *int  `yaml:"max_nested_levels,omitempty" json:"max_nested_levels,omitempty"`
	MaxArrayElements       *int  `yaml:"max_array_elements,omitempty" json:"max_array_elements,omitempty"`
	MaxMapPairs            *int  `yaml:"max_map_pairs,omitempty" json:"max_map_pairs,omitempty"`
	ForbidIndefiniteLength *bool `yaml:"forbid_indefinite_length,omitempty" json:"forbid_indefinite_length,omitempty"`
}

// DecodeLimits bounds the structure of CBOR input accepted by the
// decoder.
type DecodeLimits struct {
	// MaxNestedLevels is the deepest array/map/tag nesting accepted.
	// Default: 32
	MaxNestedLevels int `yaml:"max_nested_levels" json:"max_nested_levels"`

	// MaxArrayElements is the largest array length accepted.
	// Default: 131072
	MaxArrayElements int `yaml:"max_array_elements" json:"max_array_elements"`

	// MaxMapPairs is the largest map size accepted.
	// Default: 131072
	MaxMapPairs int `yaml:"max_map_pairs" json:"max_map_pairs"`

	// ForbidIndefiniteLength rejects indefinite-length arrays, maps
	// and strings. Default: false
	ForbidIndefiniteLength bool `yaml:"forbid_indefinite_length" json:"forbid_indefinite_length"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Environment: Development,
		Decode:      DefaultDecodeLimits(),
	}
}

// DefaultDecodeLimits returns the limits used when no configuration
// file is loaded. They match fxamacker/cbor's own defaults.
func DefaultDecodeLimits() DecodeLimits {
	return DecodeLimits{
		MaxNestedLevels:  defaultNesting,
		MaxArrayElements: defaultCollection,
		MaxMapPairs:      defaultCollection,
	}
}

// LoadFile loads configuration from the file at path, merging it over
// [Default], applying the matching environment section, and
// validating the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration data in the given format ("yaml" or
// "json"; JSON input may carry comments and trailing commas) over
// [Default] and applies the environment section. The result is not
// validated.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data, format); err != nil {
		return nil, err
	}
	cfg.applyEnvironmentOverrides()
	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return c.decode(data, "yaml")
	case ".json", ".jsonc":
		return c.decode(data, "json")
	default:
		return fmt.Errorf("unsupported config file extension %q (want .yaml, .yml, .json, or .jsonc)", filepath.Ext(path))
	}
}

func (c *Config) decode(data []byte, format string) error {
	switch format {
	case "yaml":
		return yaml.Unmarshal(data, c)
	case "json":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// applyEnvironmentOverrides applies the environment-specific overrides.
// Only the fields the override section sets replace the base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *DecodeOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.MaxNestedLevels != nil {
		c.Decode.MaxNestedLevels = *overrides.MaxNestedLevels
	}
	if overrides.MaxArrayElements != nil {
		c.Decode.MaxArrayElements = *overrides.MaxArrayElements
	}
	if overrides.MaxMapPairs != nil {
		c.Decode.MaxMapPairs = *overrides.MaxMapPairs
	}
	if overrides.ForbidIndefiniteLength != nil {
		c.Decode.ForbidIndefiniteLength = *overrides.ForbidIndefiniteLength
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if err := c.Decode.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that every limit lies within the range the CBOR
// decoder accepts.
func (l DecodeLimits) Validate() error {
	var errs []error

	if l.MaxNestedLevels < MinNestedLevels || l.MaxNestedLevels > MaxNestedLevels {
		errs = append(errs, fmt.Errorf("decode.max_nested_levels must be in [%d, %d], got %d",
			MinNestedLevels, MaxNestedLevels, l.MaxNestedLevels))
	}
	if l.MaxArrayElements < MinArrayElements || l.MaxArrayElements > MaxArrayElements {
		errs = append(errs, fmt.Errorf("decode.max_array_elements must be in [%d, %d], got %d",
			MinArrayElements, MaxArrayElements, l.MaxArrayElements))
	}
	if l.MaxMapPairs < MinMapPairs || l.MaxMapPairs > MaxMapPairs {
		errs = append(errs, fmt.Errorf("decode.max_map_pairs must be in [%d, %d], got %d",
			MinMapPairs, MaxMapPairs, l.MaxMapPairs))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
