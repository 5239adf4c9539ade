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
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SONGBOOK_CONFIG is set
//  3. env (prefix SONGBOOK_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SONGBOOK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
		}
	}

	// Environment variables: SONGBOOK_ADDR, SONGBOOK_DATASET_PATH, ...
	// Map env keys like SONGBOOK_DEFAULT_PAGE_SIZE -> default_page_size
	// (flat keys, underscores preserved to match koanf tags on the struct).
	envProvider := env.Provider("SONGBOOK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "songbook_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DatasetPath == "" {
		return nil, fmt.Errorf("%w: dataset_path must not be empty", ErrInvalidConfig)
	}
	if cfg.DefaultPageSize <= 0 {
		return nil, fmt.Errorf("%w: default_page_size must be positive", ErrInvalidConfig)
	}
	// Accept the same level names the logger does; empty means info.
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	return &cfg, nil
}
