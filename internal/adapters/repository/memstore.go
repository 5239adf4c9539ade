package repository

import (
	"context"
	"fmt"

	"github.com/tunelab/songbook/internal/domain/index"
	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/normalize"
	"github.com/tunelab/songbook/pkg/logger"
	"github.com/tunelab/songbook/pkg/metrics"
)

// In-memory, read-only Store implementation.
//
// Rows and the title index are built once from the dataset and never
// mutated, so reads need no locking.

// MemStore holds the normalized catalog and its title index.
type MemStore struct {
	rows   []model.Song
	index  *index.Index
	logger logger.Logger
}

// Store interface guard.
var _ Store = (*MemStore)(nil)

// NewMemStore normalizes and indexes a dataset into a read-only store.
// Data-quality findings (dropped duplicates, untitled rows) are logged and
// metered here; they do not fail the build.
func NewMemStore(ctx context.Context, ds model.Dataset, opts ...Option) (*MemStore, error) {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("store")
	}

	rows, err := normalize.Rows(ds)
	if err != nil {
		return nil, fmt.Errorf("normalizing dataset: %w", err)
	}
	ix := index.Build(rows)

	for _, title := range ix.Duplicates() {
		s.logger.Debug(ctx, "dropping row with duplicate title", logger.String("title", title))
		metrics.RecordDuplicateTitle()
	}
	if dropped := len(ix.Duplicates()); dropped > 0 {
		s.logger.Warn(ctx, "duplicate titles dropped from index", logger.Int("count", dropped))
	}
	if untitled := ix.Untitled(); untitled > 0 {
		s.logger.Warn(ctx, "rows without a usable title skipped", logger.Int("count", untitled))
		for i := 0; i < untitled; i++ {
			metrics.RecordUntitledSong()
		}
	}

	metrics.UpdateDatasetRows(len(rows))
	metrics.UpdateTitleIndexSize(ix.Len())

	s.logger.Info(ctx, "catalog built",
		logger.Int("rows", len(rows)),
		logger.Int("indexedTitles", ix.Len()),
	)

	s.rows = rows
	s.index = ix
	return s, nil
}

// All returns every song in ascending row order.
func (s *MemStore) All(_ context.Context) []model.Song {
	out := make([]model.Song, len(s.rows))
	copy(out, s.rows)
	return out
}

// ByTitle returns the song indexed under the case-folded form of title.
func (s *MemStore) ByTitle(_ context.Context, title string) (model.Song, error) {
	song, found := s.index.Lookup(index.Key(title))
	if !found {
		return nil, ErrNotFound
	}
	return song, nil
}

// Count returns the number of rows in the catalog.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.rows)
}

// Stats reports catalog shape and data-quality counters.
func (s *MemStore) Stats(_ context.Context) Stats {
	return Stats{
		Rows:            len(s.rows),
		IndexedTitles:   s.index.Len(),
		DuplicateTitles: len(s.index.Duplicates()),
		UntitledRows:    s.index.Untitled(),
	}
}
