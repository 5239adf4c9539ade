// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repository "github.com/tunelab/songbook/internal/adapters/repository"
)

// LookupDependencies defines the interface for title lookup operations.
type LookupDependencies interface {
	SongByTitle(ctx context.Context, title string) (Song, error)
}

// TitleHandler handles title lookup requests.
type TitleHandler struct {
	deps LookupDependencies
}

// NewTitleHandler creates a new title handler.
func NewTitleHandler(deps LookupDependencies) *TitleHandler {
	return &TitleHandler{deps: deps}
}

// HandleGetSongByTitle handles GET /songs/title?title=NAME requests.
// An absent title parameter and a blank one are rejected with distinct
// messages; the lookup itself ignores case and surrounding whitespace.
func (h *TitleHandler) HandleGetSongByTitle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query()
	if !query.Has("title") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingTitle)
		return
	}
	title := query.Get("title")
	if strings.TrimSpace(title) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrEmptyTitle)
		return
	}

	song, err := h.deps.SongByTitle(r.Context(), title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrSongNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}
