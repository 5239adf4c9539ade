// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// serviceVersion is reported by the root status document.
const serviceVersion = "1.0.0"

// statusResponse is the service banner served at the root path.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// StatusHandler handles root status requests.
type StatusHandler struct{}

// NewStatusHandler creates a new status handler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// HandleRoot handles GET / requests. The root pattern is also the mux
// catch-all, so any other path or method falls through to a 404 here.
func (h *StatusHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "online",
		Message: "Song Analytics API is running",
		Version: serviceVersion,
	})
}
