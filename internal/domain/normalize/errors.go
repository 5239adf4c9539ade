package normalize

import "errors"

// Sentinel errors for dataset normalization.
var (
	// ErrNoAttributes indicates the dataset document carries no attribute
	// columns, leaving the row count undefined.
	ErrNoAttributes = errors.New("dataset has no attributes")
)
