// Package config loads and saves project configuration from .annodoc/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
)

const (
	DefaultVersion = 1

	// Default values for render configuration.
	DefaultRenderTitle  = "API Documentation"
	DefaultRenderOutput = "DOCS.md"
)

// Config defines project configuration stored in .annodoc/config.json.
type Config struct {
	Version int           `json:"version"`
	Include []string      `json:"include,omitempty"`
	Exclude []string      `json:"exclude,omitempty"`
	Markers []string      `json:"markers,omitempty"`
	Render  *RenderConfig `json:"render,omitempty"`
}

// RenderConfig holds markdown rendering settings.
type RenderConfig struct {
	// Title is the document heading (default "API Documentation").
	Title *string `json:"title,omitempty"`

	// Output is the markdown output path relative to the repo root
	// (default "DOCS.md").
	Output *string `json:"output,omitempty"`
}

// GetTitle returns the document title (default "API Documentation").
func (c *RenderConfig) GetTitle() string {
	if c == nil || c.Title == nil {
		return DefaultRenderTitle
	}
	return *c.Title
}

// GetOutput returns the markdown output path (default "DOCS.md").
func (c *RenderConfig) GetOutput() string {
	if c == nil || c.Output == nil {
		return DefaultRenderOutput
	}
	return *c.Output
}

// Validate checks render config values.
func (c *RenderConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.Title != nil && *c.Title == "" {
		return errors.New("render title must not be empty")
	}
	if c.Output != nil && *c.Output == "" {
		return errors.New("render output must not be empty")
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
		Exclude: []string{"vendor/**", "node_modules/**"},
	}
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if _, err := path.Match(stripDoublestar(pattern), "x"); err != nil {
			return fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
	}
	for _, m := range c.Markers {
		if m == "" {
			return errors.New("markers must not contain empty strings")
		}
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("invalid render config: %w", err)
	}
	return nil
}

// stripDoublestar reduces ** segments so path.Match can syntax-check the rest.
func stripDoublestar(pattern string) string {
	out := make([]rune, 0, len(pattern))
	var prev rune
	for _, r := range pattern {
		if r == '*' && prev == '*' {
			continue
		}
		out = append(out, r)
		prev = r
	}
	return string(out)
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault reads config from disk, returning defaults if file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes a config to disk.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
