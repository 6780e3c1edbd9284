package config

import (
	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/rewriter"
)

// Config is the resolved application configuration.
type Config struct {
	Rewrite RewriteConfig `koanf:"rewrite"`
	Log     LogConfig     `koanf:"log"`
}

// RewriteConfig selects inputs, outputs and rule sources.
type RewriteConfig struct {
	Mode   string   `koanf:"mode"`
	Rules  []string `koanf:"rules"`
	Input  string   `koanf:"input"`
	Output string   `koanf:"output"`
}

// LogConfig controls logging destinations.
type LogConfig struct {
	File bool `koanf:"file"`
}

// Validate checks values that cannot be expressed by the types alone.
func (c *Config) Validate() error {
	if _, err := rewriter.ParseMode(c.Rewrite.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid rewrite.mode")
	}
	return nil
}

// Mode returns the parsed unit mode. Call Validate first.
func (c *Config) Mode() rewriter.Mode {
	m, err := rewriter.ParseMode(c.Rewrite.Mode)
	if err != nil {
		return rewriter.ModeLine
	}
	return m
}
