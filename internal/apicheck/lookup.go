package apicheck

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// lookupTitles queries the title endpoint concurrently for every titled
// song in the listing, cycling through case variants so the lookups hit
// the case-folding path rather than exact matches.
func lookupTitles(ctx context.Context, client *HTTPClient, config *Config, songs []Song, stats *Stats) error {
	titles := collectTitles(songs)
	if len(titles) == 0 {
		log.Println("⚠️  No titled songs in the listing, skipping lookups")
		return nil
	}

	queries := make([]string, len(titles))
	for i, title := range titles {
		queries[i] = caseVariant(title, i)
	}

	workers := config.Workers
	if workers <= 0 {
		workers = 1
	}

	log.Printf("🔎 Looking up %d titles with %d workers...", len(queries), workers)

	// Counters for statistics
	var (
		succeeded int64
		failed    int64
	)

	// Progress reporting
	var lastReportNanos int64
	reportInterval := 1 * time.Second

	// Create worker pool
	queryChan := make(chan int, workers*WorkerChannelMultiplier) // Send indices instead of queries
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range queryChan {
				select {
				case <-ctx.Done():
					return
				default:
					query := queries[index]
					err := lookupSingleTitle(ctx, client, config.BaseURL, query)

					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Lookup failed for %q: %v", query, err)
						}
					} else {
						atomic.AddInt64(&succeeded, 1)
					}

					// Progress reporting
					if now := time.Now(); now.UnixNano()-atomic.LoadInt64(&lastReportNanos) >= int64(reportInterval) {
						atomic.StoreInt64(&lastReportNanos, now.UnixNano())
						succ := atomic.LoadInt64(&succeeded)
						fail := atomic.LoadInt64(&failed)
						total := succ + fail

						if config.Verbose {
							log.Printf("📊 Lookup progress: %d/%d (success: %d, failed: %d)",
								total, len(queries), succ, fail)
						} else {
							log.Printf("\r🔎 Lookups: %d/%d (success: %d, failed: %d)",
								total, len(queries), succ, fail)
						}
					}
				}
			}
		}(i)
	}

	// Send query indices to workers
	go func() {
		defer close(queryChan)
		for i := range queries {
			select {
			case <-ctx.Done():
				return
			case queryChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		log.Println() // New line after progress indicator
	}

	// Update stats
	stats.LookupsAttempted = len(queries)
	stats.LookupsSucceeded = int(atomic.LoadInt64(&succeeded))
	stats.LookupsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Title lookup completed:
   Succeeded: %d
   Failed: %d
`, stats.LookupsSucceeded, stats.LookupsFailed)

	return nil
}

// lookupSingleTitle queries the title endpoint and checks that the
// returned song carries the queried title, ignoring case and padding.
func lookupSingleTitle(ctx context.Context, client *HTTPClient, baseURL, title string) error {
	target := baseURL + "/songs/title?title=" + url.QueryEscape(title)

	var song Song
	if err := client.getJSON(ctx, target, StatusOK, &song); err != nil {
		return err
	}

	got, ok := song["title"].(string)
	if !ok {
		return fmt.Errorf("response has no title field")
	}
	if !strings.EqualFold(strings.TrimSpace(title), got) {
		return fmt.Errorf("returned title %q does not match query %q", got, title)
	}

	return nil
}

// collectTitles extracts the usable titles from the listing.
func collectTitles(songs []Song) []string {
	titles := make([]string, 0, len(songs))
	for _, song := range songs {
		title, ok := song["title"].(string)
		if !ok || strings.TrimSpace(title) == "" {
			continue
		}
		titles = append(titles, title)
	}
	return titles
}

// caseVariant returns a cased or padded variant of the title.
func caseVariant(title string, i int) string {
	switch i % caseVariantCount {
	case caseVariantOriginal:
		return title
	case caseVariantUpper:
		return strings.ToUpper(title)
	case caseVariantLower:
		return strings.ToLower(title)
	case caseVariantPadded:
		return "  " + title + "  "
	default:
		return title
	}
}
