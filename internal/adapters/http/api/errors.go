package api

import "errors"

// Sentinel kinds for API errors. The messages are part of the wire
// contract: writeError sends them to clients verbatim.
var (
	ErrMissingTitle = errors.New("title query parameter is required")
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrSongNotFound = errors.New("Song not found")
)
