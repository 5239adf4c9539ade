// Package model contains domain models passed between layers.
package model

import "strings"

// TitleAttr is the attribute holding a song's title.
const TitleAttr = "title"

// Song represents one catalog row: attribute name to value.
// Values are whatever JSON scalars the dataset carries; attributes absent
// from a row are present with a nil value.
type Song map[string]any

// Title returns the song's title and whether it is usable for indexing.
// A title is usable when the attribute exists, holds a string, and is
// non-empty after trimming surrounding whitespace.
func (s Song) Title() (string, bool) {
	v, exists := s[TitleAttr]
	if !exists {
		return "", false
	}
	title, isString := v.(string)
	if !isString || strings.TrimSpace(title) == "" {
		return "", false
	}
	return title, true
}

// Attr returns the value stored for an attribute, nil when absent.
func (s Song) Attr(name string) any {
	return s[name]
}
