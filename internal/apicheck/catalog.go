package apicheck

import (
	"context"
	"log"

	"github.com/tunelab/songbook/pkg/logger"
)

// fetchAllSongs retrieves the complete catalog listing.
func fetchAllSongs(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) ([]Song, error) {
	log.Printf("📚 Fetching full catalog from %s/songs/all...", config.BaseURL)

	var songs []Song
	if err := client.getJSON(ctx, config.BaseURL+"/songs/all", StatusOK, &songs); err != nil {
		return nil, err
	}

	stats.SongsListed = len(songs)
	log.Printf("✅ Retrieved %d songs", len(songs))

	return songs, nil
}

// fetchPage retrieves one page of the catalog from the given URL.
func fetchPage(ctx context.Context, client *HTTPClient, url string) (PageResponse, error) {
	var page PageResponse
	if err := client.getJSON(ctx, url, StatusOK, &page); err != nil {
		return PageResponse{}, err
	}
	return page, nil
}

// fetchStats retrieves the service counters.
func fetchStats(ctx context.Context, client *HTTPClient, config *Config) error {
	log.Println("📈 Fetching service stats...")

	var stats map[string]interface{}
	if err := client.getJSON(ctx, config.BaseURL+"/stats", StatusOK, &stats); err != nil {
		return err
	}

	logger.Get().Info(ctx, "service stats", logger.Any("stats", stats))
	return nil
}
