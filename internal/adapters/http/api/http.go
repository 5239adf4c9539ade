// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// AllSongs returns the whole catalog in dataset order.
	AllSongs(ctx context.Context) []Song

	// PageSongs returns one page of the catalog. A non-positive size
	// means "use the configured default".
	PageSongs(ctx context.Context, page, size int) Page

	// SongByTitle resolves a case-insensitive title lookup.
	SongByTitle(ctx context.Context, title string) (Song, error)
}

// Song mirrors the read shape returned by catalog queries.
type Song = model.Song

// Page mirrors the paginated read shape returned by catalog queries.
type Page = types.Page

// Server wires HTTP routes for the business API.
type Server struct {
	statusHandler    *StatusHandler
	songsHandler     *SongsHandler
	titleHandler     *TitleHandler
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		statusHandler:    NewStatusHandler(),
		songsHandler:     NewSongsHandler(deps),
		titleHandler:     NewTitleHandler(deps),
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/songs/all", MetricsMiddleware(s.songsHandler.HandleListSongs, "songs_all"))
	mux.HandleFunc("/songs/title", MetricsMiddleware(s.titleHandler.HandleGetSongByTitle, "songs_title"))
	mux.HandleFunc("/songs", MetricsMiddleware(s.songsHandler.HandleGetSongs, "songs"))

	// The root pattern doubles as the catch-all: HandleRoot answers the
	// status document on "/" and 404s every unknown path.
	mux.HandleFunc("/", MetricsMiddleware(s.statusHandler.HandleRoot, "root"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// queryInt reads an integer query parameter, falling back when the value
// is absent or not a number. Malformed paging input never fails a request.
func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
