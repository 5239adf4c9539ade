// Package repository defines the catalog store interface and errors.
package repository

import (
	"context"

	"github.com/tunelab/songbook/internal/domain/model"
)

// Stats describes the shape and data quality of a loaded catalog.
type Stats struct {
	Rows            int
	IndexedTitles   int
	DuplicateTitles int
	UntitledRows    int
}

// Store provides read access to the catalog state.
type Store interface {
	// All returns every song in ascending row order.
	All(ctx context.Context) []model.Song

	// ByTitle returns the song indexed under the case-folded form of title.
	// Returns ErrNotFound if no row claimed that title.
	ByTitle(ctx context.Context, title string) (model.Song, error)

	// Count returns the number of rows in the catalog.
	Count(ctx context.Context) int

	// Stats reports catalog shape and data-quality counters.
	Stats(ctx context.Context) Stats
}
