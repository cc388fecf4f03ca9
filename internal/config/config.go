// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config defines the settings of the jlite command-line tool and
// loads them from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Allocator names accepted by the Allocator setting.
const (
	AllocHeap = "heap"
	AllocPool = "pool"
)

// Config holds the settings of the tool.
type Config struct {
	Log       Log    `yaml:"log"`
	Allocator string `yaml:"allocator"` // "heap" or "pool"
	Exact     bool   `yaml:"exact"`     // match object keys exactly
	HuJSON    bool   `yaml:"hujson"`    // accept comments and trailing commas
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // DEBUG, INFO, WARN, ERROR
	Mode  string `yaml:"mode"`  // SIMPLE or FULL
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Log:       Log{Level: "INFO", Mode: "SIMPLE"},
		Allocator: AllocHeap,
	}
}

// Load reads settings from the YAML file at path, applied over the defaults.
// If path == "", Load returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings from data, applied over the defaults.
// Unknown fields are reported as errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports an error if c contains an invalid setting.
func (c *Config) Validate() error {
	switch c.Allocator {
	case AllocHeap, AllocPool:
	default:
		return fmt.Errorf("invalid allocator %q", c.Allocator)
	}
	return nil
}
