// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's sentinel kinds.
package config

import (
	"context"
	"strings"

	"github.com/tunelab/songbook/internal/domain/paginate"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the column-oriented songs JSON document.
	DatasetPath string `koanf:"dataset_path"`

	// DefaultPageSize is used when /songs is queried without a usable size.
	DefaultPageSize int `koanf:"default_page_size"`

	// AllowedOrigins is a comma-separated list of CORS origins ("*" for any).
	// Kept as a single string so it can be set through one env var.
	AllowedOrigins string `koanf:"allowed_origins"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		DatasetPath:     "data/playlist.json",
		DefaultPageSize: paginate.DefaultSize,
		AllowedOrigins:  "*",
	}
	return c
}

// CORSOrigins splits AllowedOrigins into the slice form the CORS layer
// expects. Blank entries are dropped; an empty result falls back to "*".
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
