// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// StatsProvider supplies the service counters reported on /stats.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles catalog stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests. The payload is the provider's
// counter map plus the report timestamp.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats := make(map[string]interface{})
	for k, v := range h.statsProvider.GetStats() {
		stats[k] = v
	}
	stats["reportedAt"] = time.Now().UTC().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, stats)
}
