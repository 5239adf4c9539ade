// Package normalize pivots column-oriented catalog data into row records.
package normalize

import (
	"strconv"

	"github.com/tunelab/songbook/internal/domain/model"
)

// Rows pivots a column-oriented dataset into its ordered sequence of row
// records. Row count follows the cardinality of the first attribute's
// column, first meaning first in document order. Every record carries every
// attribute; indices a column does not cover come out nil.
//
// An empty attribute set is a configuration error, not an empty catalog.
func Rows(ds model.Dataset) ([]model.Song, error) {
	attrs := ds.Attributes()
	if len(attrs) == 0 {
		return nil, ErrNoAttributes
	}

	count := len(ds.Column(attrs[0]))
	songs := make([]model.Song, 0, count)
	for i := 0; i < count; i++ {
		key := strconv.Itoa(i)
		song := make(model.Song, len(attrs))
		for _, attr := range attrs {
			song[attr] = ds.Column(attr)[key]
		}
		songs = append(songs, song)
	}
	return songs, nil
}
