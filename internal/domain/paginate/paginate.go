// Package paginate slices the catalog into pages with clamped bounds.
package paginate

import (
	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/types"
)

// DefaultSize is the page size used when a request carries none.
const DefaultSize = 10

// Page slices items for a one-based page request. Out-of-range requests
// clamp instead of failing: page below 1 becomes 1, a page past the end
// becomes the last page. A non-positive size falls back to DefaultSize.
// TotalPages is 0 for an empty catalog rather than one phantom page.
// Pure and deterministic; the returned songs slice is never nil.
func Page(items []model.Song, page, size int) types.Page {
	if size <= 0 {
		size = DefaultSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	if total == 0 {
		return types.Page{Page: page, Size: size, Total: 0, TotalPages: 0, Songs: []model.Song{}}
	}

	totalPages := (total + size - 1) / size
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	songs := make([]model.Song, end-start)
	copy(songs, items[start:end])

	return types.Page{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		Songs:      songs,
	}
}
