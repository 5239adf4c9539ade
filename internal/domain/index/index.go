// Package index builds the case-insensitive title lookup for the catalog.
package index

import (
	"golang.org/x/text/cases"

	"github.com/tunelab/songbook/internal/domain/model"
)

// Key case-folds a title for index storage and lookup. Full Unicode case
// folding, so pairs like "Straße"/"STRASSE" and final-sigma variants meet
// on the same key. A fresh Caser per call; they are not goroutine-safe.
func Key(title string) string {
	return cases.Fold().String(title)
}

// Index maps case-folded titles to the first song that claimed them.
// It is built once and read-only afterward, safe for concurrent lookups.
type Index struct {
	byTitle  map[string]model.Song
	dropped  []string
	untitled int
}

// Build scans rows in order and indexes each usable title. The first row
// with a given folded title wins; later claimants are recorded in
// Duplicates for the caller to report. Rows without a usable title are
// counted as untitled.
func Build(rows []model.Song) *Index {
	ix := &Index{byTitle: make(map[string]model.Song, len(rows))}
	for _, song := range rows {
		title, usable := song.Title()
		if !usable {
			ix.untitled++
			continue
		}
		key := Key(title)
		if _, taken := ix.byTitle[key]; taken {
			ix.dropped = append(ix.dropped, title)
			continue
		}
		ix.byTitle[key] = song
	}
	return ix
}

// Lookup returns the song stored under a folded key, as produced by Key.
func (ix *Index) Lookup(key string) (model.Song, bool) {
	song, found := ix.byTitle[key]
	return song, found
}

// Len returns the number of distinct indexed titles.
func (ix *Index) Len() int {
	return len(ix.byTitle)
}

// Duplicates returns the raw titles of rows dropped because an earlier row
// already claimed their folded title, in row order.
func (ix *Index) Duplicates() []string {
	return ix.dropped
}

// Untitled returns how many rows were skipped for lacking a usable title.
func (ix *Index) Untitled() int {
	return ix.untitled
}
