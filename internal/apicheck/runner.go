package apicheck

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tunelab/songbook/pkg/logger"
)

// Run executes the complete API check against a running instance.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}
	runID := uuid.NewString()

	logger.Get().Info(ctx, "starting songbook api check",
		logger.String("runID", runID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("page", config.Page),
		logger.Int("size", config.Size),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout, runID)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the full catalog listing
	songs, err := fetchAllSongs(ctx, client, config, stats)
	if err != nil {
		return fmt.Errorf("catalog listing failed: %w", err)
	}

	// Step 3: Verify pagination against the listing
	if err := verifyPagination(ctx, client, config, songs, stats); err != nil {
		return fmt.Errorf("pagination verification failed: %w", err)
	}

	// Step 4: Look up titles concurrently with case variants
	if err := lookupTitles(ctx, client, config, songs, stats); err != nil {
		return fmt.Errorf("title lookup failed: %w", err)
	}

	// Step 5: Verify the error contract
	if err := verifyErrorContract(ctx, client, config, stats); err != nil {
		return fmt.Errorf("error contract verification failed: %w", err)
	}

	// Step 6: Fetch service stats
	if err := fetchStats(ctx, client, config); err != nil {
		return fmt.Errorf("stats retrieval failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	if failures := stats.Failures(); failures > 0 {
		return fmt.Errorf("%w: %d checks failed", ErrVerificationFailed, failures)
	}

	logger.Get().Info(ctx, "api check completed successfully")
	return nil
}

// checkServiceHealth verifies the status banner and the metrics endpoint.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	var status StatusResponse
	if err := client.getJSON(ctx, config.BaseURL+"/", StatusOK, &status); err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status.Status != "online" {
		return fmt.Errorf("unexpected service status: %q", status.Status)
	}

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to reach metrics endpoint: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the endpoint returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	if echo := resp.Header.Get("X-Request-ID"); echo != client.runID {
		return fmt.Errorf("request id not echoed: got %q, want %q", echo, client.runID)
	}

	logger.Get().Info(ctx, "service is healthy", logger.String("version", status.Version))
	return nil
}

// displayFinalStats prints the final check statistics.
func displayFinalStats(stats *Stats) {
	var lookupSuccessRate float64

	if stats.LookupsAttempted > 0 {
		lookupSuccessRate = float64(stats.LookupsSucceeded) / float64(stats.LookupsAttempted) * PercentageMultiplier
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("songsListed", stats.SongsListed),
		logger.Int("pagesFetched", stats.PagesFetched),
		logger.Int("pageChecksFailed", stats.PageChecksFailed),
		logger.Int("lookupsAttempted", stats.LookupsAttempted),
		logger.Int("lookupsSucceeded", stats.LookupsSucceeded),
		logger.Int("lookupsFailed", stats.LookupsFailed),
		logger.Int("contractChecks", stats.ContractChecks),
		logger.Int("contractFailures", stats.ContractFailures),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("lookupSuccessRate", lookupSuccessRate))
}
