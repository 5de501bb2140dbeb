// Package config loads CLI configuration for lexdist from defaults, an
// optional lexdist.yaml file, LEXDIST_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"context"
	"fmt"
)

// Defaults for every configurable key.
const (
	DefaultDatabase    = "asjp.tab"
	DefaultVowelWeight = 1.0
	DefaultFormat      = FormatText
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Config carries all CLI settings.
type Config struct {
	// Database is the path to the tab-separated ASJP database file.
	Database string `koanf:"database"`
	// VowelWeight is the substitution cost for differing vowel pairs.
	VowelWeight float64 `koanf:"vowel_weight"`
	// Format selects table rendering: text, markdown or csv.
	Format string `koanf:"format"`
}

// Validate rejects settings the commands cannot work with. VowelWeight must
// be non-negative here even though the metric itself tolerates any value;
// a negative weight on the command line is almost certainly a typo.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatMarkdown, FormatCSV:
	default:
		return fmt.Errorf("config: unknown output format %q (want text, markdown or csv)", c.Format)
	}
	if c.VowelWeight < 0 {
		return fmt.Errorf("config: vowel_weight must be non-negative, got %v", c.VowelWeight)
	}
	if c.Database == "" {
		return fmt.Errorf("config: database path must not be empty")
	}

	return nil
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		Database:    DefaultDatabase,
		VowelWeight: DefaultVowelWeight,
		Format:      DefaultFormat,
	}
}

// ctxKey keys the Config stored in a command context.
type ctxKey struct{}

// NewContext returns ctx carrying cfg for retrieval by subcommands.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config carried by ctx, or Default() when absent.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return c
	}

	return Default()
}
