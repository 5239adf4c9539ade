// Package repository defines the catalog store interface and errors.
package repository

import "github.com/tunelab/songbook/pkg/logger"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithLogger sets the logger used for data-quality reporting during build.
func WithLogger(log logger.Logger) Option {
	return func(s *MemStore) {
		if log != nil {
			s.logger = log
		}
	}
}
