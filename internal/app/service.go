// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	repository "github.com/tunelab/songbook/internal/adapters/repository"
	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/paginate"
	"github.com/tunelab/songbook/internal/domain/types"
	"github.com/tunelab/songbook/pkg/logger"
	"github.com/tunelab/songbook/pkg/metrics"
)

// Service implements the API dependencies for the song catalog.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog repository.Store

	// Configuration
	datasetPath     string
	defaultPageSize int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath sets the path of the column-oriented songs document.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithDefaultPageSize sets the page size used when callers do not
// provide a usable one.
func WithDefaultPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.defaultPageSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		datasetPath:     "data/playlist.json",
		defaultPageSize: paginate.DefaultSize,
		logger:          nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset from disk and builds the in-memory catalog.
// A missing or malformed dataset is fatal: the service refuses to start
// rather than serve an empty or partial library.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading song dataset...",
		logger.String("path", s.datasetPath),
	)

	start := time.Now()

	raw, err := os.ReadFile(s.datasetPath)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", s.datasetPath, err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parsing dataset %s: %w", s.datasetPath, err)
	}

	store, err := repository.NewMemStore(ctx, ds,
		repository.WithLogger(s.logger.Named("store")),
	)
	if err != nil {
		return fmt.Errorf("building catalog from %s: %w", s.datasetPath, err)
	}

	loadMS := float64(time.Since(start).Milliseconds())
	metrics.RecordDatasetLoadDuration(loadMS)

	s.catalog = store
	s.started = true

	st := store.Stats(ctx)
	s.logger.Info(ctx, "song service started",
		logger.Int("rows", st.Rows),
		logger.Int("indexedTitles", st.IndexedTitles),
		logger.Float64("loadMS", loadMS),
	)

	return nil
}

// Stop shuts the service down. The catalog holds no external resources,
// so this only flips state and logs.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "song service stopped")
}

// AllSongs returns every song in original dataset order.
func (s *Service) AllSongs(ctx context.Context) []model.Song {
	start := time.Now()

	songs := s.catalog.All(ctx)

	metrics.RecordSongsServed(len(songs))
	metrics.RecordCatalogQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	return songs
}

// PageSongs returns one page of the catalog. A non-positive size falls
// back to the configured default before pagination applies its own
// clamping rules.
func (s *Service) PageSongs(ctx context.Context, page, size int) types.Page {
	start := time.Now()

	if size <= 0 {
		size = s.defaultPageSize
	}
	result := paginate.Page(s.catalog.All(ctx), page, size)

	metrics.RecordPageServed()
	metrics.RecordSongsServed(len(result.Songs))
	metrics.RecordCatalogQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	s.logger.Debug(ctx, "served song page",
		logger.Int("page", result.Page),
		logger.Int("size", result.Size),
		logger.Int("total", result.Total),
	)

	return result
}

// SongByTitle looks a song up by case-insensitive title. Surrounding
// whitespace in the query is ignored.
func (s *Service) SongByTitle(ctx context.Context, title string) (model.Song, error) {
	start := time.Now()

	song, err := s.catalog.ByTitle(ctx, strings.TrimSpace(title))

	metrics.RecordCatalogQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	if err != nil {
		metrics.RecordTitleLookupMiss()
		s.logger.Debug(ctx, "title lookup missed",
			logger.String("title", title),
		)
		return nil, err
	}

	metrics.RecordTitleLookupHit()
	return song, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"datasetPath":     s.datasetPath,
		"defaultPageSize": s.defaultPageSize,
	}

	if s.started {
		st := s.catalog.Stats(ctx)

		stats["rows"] = st.Rows
		stats["indexedTitles"] = st.IndexedTitles
		stats["duplicateTitles"] = st.DuplicateTitles
		stats["untitledRows"] = st.UntitledRows

		// Update metrics
		metrics.UpdateDatasetRows(st.Rows)
		metrics.UpdateTitleIndexSize(st.IndexedTitles)
	}

	return stats
}
