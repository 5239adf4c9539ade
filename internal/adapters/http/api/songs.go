// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// CatalogDependencies defines the interface for catalog listing operations.
type CatalogDependencies interface {
	AllSongs(ctx context.Context) []Song
	PageSongs(ctx context.Context, page, size int) Page
}

// SongsHandler handles catalog listing requests.
type SongsHandler struct {
	deps CatalogDependencies
}

// NewSongsHandler creates a new songs handler.
func NewSongsHandler(deps CatalogDependencies) *SongsHandler {
	return &SongsHandler{deps: deps}
}

// HandleListSongs handles GET /songs/all requests. The response is the
// bare song array, not a pagination envelope.
func (h *SongsHandler) HandleListSongs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.AllSongs(r.Context()))
}

// HandleGetSongs handles GET /songs?page=N&size=M requests. Absent or
// malformed parameters fall back to defaults instead of erroring: page
// defaults to 1 and size 0 asks the service for its configured default.
func (h *SongsHandler) HandleGetSongs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 0)
	writeJSON(w, http.StatusOK, h.deps.PageSongs(r.Context(), page, size))
}
