// Package types contains common types used across the application
package types

import "github.com/tunelab/songbook/internal/domain/model"

// Page represents one page of the catalog with its pagination metadata.
// Field names match the wire format of the paginated songs endpoint.
type Page struct {
	Page       int          `json:"page"`
	Size       int          `json:"size"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
	Songs      []model.Song `json:"songs"`
}
