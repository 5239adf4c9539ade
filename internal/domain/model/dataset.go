package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Column maps stringified row indices ("0", "1", ...) to values.
type Column map[string]any

// Dataset is a column-oriented catalog document: attribute name to the
// column of values for that attribute. Attribute order follows the source
// document, so "first attribute" is deterministic across runs.
type Dataset struct {
	attrs []string
	cols  map[string]Column
}

// NewDataset builds a Dataset from explicit attribute order and columns.
// Attributes without a column get an empty one.
func NewDataset(attrs []string, cols map[string]Column) Dataset {
	d := Dataset{
		attrs: make([]string, 0, len(attrs)),
		cols:  make(map[string]Column, len(attrs)),
	}
	for _, name := range attrs {
		if _, seen := d.cols[name]; seen {
			continue
		}
		col := cols[name]
		if col == nil {
			col = Column{}
		}
		d.attrs = append(d.attrs, name)
		d.cols[name] = col
	}
	return d
}

// UnmarshalJSON decodes the document while recording top-level key order.
// A stock map would lose it, and row count depends on the first attribute.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return fmt.Errorf("dataset must be a JSON object, got %v", tok)
	}

	d.attrs = nil
	d.cols = make(map[string]Column)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading attribute name: %w", err)
		}
		name, isString := keyTok.(string)
		if !isString {
			return fmt.Errorf("unexpected token %v for attribute name", keyTok)
		}

		var col Column
		if err := dec.Decode(&col); err != nil {
			return fmt.Errorf("decoding attribute %q: %w", name, err)
		}

		if _, seen := d.cols[name]; !seen {
			d.attrs = append(d.attrs, name)
		}
		d.cols[name] = col
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading dataset end: %w", err)
	}
	return nil
}

// Attributes returns the attribute names in document order.
func (d Dataset) Attributes() []string {
	return d.attrs
}

// Column returns the column stored for an attribute, nil when absent.
func (d Dataset) Column(name string) Column {
	return d.cols[name]
}

// Empty reports whether the dataset has no attributes at all.
func (d Dataset) Empty() bool {
	return len(d.attrs) == 0
}
