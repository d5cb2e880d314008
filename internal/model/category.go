package model

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a result message. The set is closed: exactly four
// members, declared in display order.
type Category int

const (
	DataQuality Category = iota
	DataSource
	DataEntry
	Internal
)

var categoryKeys = [...]string{
	DataQuality: "DATA_QUALITY",
	DataSource:  "DATA_SOURCE",
	DataEntry:   "DATA_ENTRY",
	Internal:    "INTERNAL",
}

var categoryLabels = [...]string{
	DataQuality: "data quality",
	DataSource:  "data source",
	DataEntry:   "data entry",
	Internal:    "internal",
}

// Upper-cased display labels are computed once here rather than
// re-derived at render sites.
var categoryUpperLabels = func() [len(categoryLabels)]string {
	upper := cases.Upper(language.Und)
	var out [len(categoryLabels)]string
	for i, l := range categoryLabels {
		out[i] = upper.String(l)
	}
	return out
}()

// Key returns the stable machine name used as a JSON key, e.g. "DATA_QUALITY".
func (c Category) Key() string {
	return categoryKeys[c]
}

// Label returns the human display label, e.g. "data quality".
func (c Category) Label() string {
	return categoryLabels[c]
}

// UpperLabel returns the display label upper-cased for headings and CSV rows.
func (c Category) UpperLabel() string {
	return categoryUpperLabels[c]
}

func (c Category) String() string {
	return categoryKeys[c]
}

// Categories returns all categories in declaration order. Renderers iterate
// this to get a stable section order.
func Categories() []Category {
	return []Category{DataQuality, DataSource, DataEntry, Internal}
}

// ParseCategory maps a machine name back to its Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == c.Key() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
