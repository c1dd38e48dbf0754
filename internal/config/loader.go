package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if ADG_CONFIG is set
//  3. env (prefix ADG_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ADG_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ADG_SEED, ADG_USERS, ADG_OUT_DIR, ...
	// Map env keys like ADG_OUT_DIR -> out_dir (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ADG_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "adg_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that can never produce a well-formed run.
// Zero users or days are allowed and yield empty, schema-valid tables;
// negative counts are configuration errors.
func (c *Config) Validate() error {
	if c.Users < 0 {
		return fmt.Errorf("%w: users must be >= 0, got %d", ErrInvalidConfig, c.Users)
	}
	if c.Days < 0 {
		return fmt.Errorf("%w: days must be >= 0, got %d", ErrInvalidConfig, c.Days)
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: out_dir must not be empty", ErrInvalidConfig)
	}
	if c.TopPages < 0 {
		return fmt.Errorf("%w: top_pages must be >= 0, got %d", ErrInvalidConfig, c.TopPages)
	}
	return nil
}
