package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound = errors.New("song not found")
)
