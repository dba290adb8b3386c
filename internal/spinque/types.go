package spinque

import (
	"encoding/json"
	"strings"
)

// AttrValue holds a single attribute value from a Spinque result. The API is
// inconsistent about single- versus multi-valued fields, so every accessor
// handles both the scalar and the sequence representation.
type AttrValue struct {
	values []string
}

// UnmarshalJSON accepts a scalar, a sequence of scalars, or null
func (v *AttrValue) UnmarshalJSON(data []byte) error {
	v.values = nil

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		v.values = []string{single}
		return nil
	}

	var many []json.RawMessage
	if err := json.Unmarshal(data, &many); err != nil {
		// Numbers, booleans and objects occasionally show up; render them verbatim.
		v.values = []string{strings.Trim(string(data), `"`)}
		return nil
	}

	for _, raw := range many {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = strings.Trim(string(raw), `"`)
		}
		v.values = append(v.values, s)
	}
	return nil
}

// First returns the first value, or "" when the attribute is empty
func (v AttrValue) First() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Strings returns all values of the attribute
func (v AttrValue) Strings() []string {
	return v.values
}

// IsEmpty reports whether the attribute carries no value at all
func (v AttrValue) IsEmpty() bool {
	for _, s := range v.values {
		if s != "" {
			return false
		}
	}
	return true
}

// Attributes is the open attribute bag keyed by semantic-web URI
type Attributes map[string]AttrValue

// First returns the first value of the named attribute, or ""
func (a Attributes) First(key string) string {
	return a[key].First()
}

// FirstOf returns the first non-empty value among the given attribute keys
func (a Attributes) FirstOf(keys ...string) string {
	for _, key := range keys {
		if s := a.First(key); s != "" {
			return s
		}
	}
	return ""
}

// Strings returns all values of the named attribute
func (a Attributes) Strings(key string) []string {
	return a[key].Strings()
}

// tupleEntry is the single entry of a result item's tuple
type tupleEntry struct {
	ID         string     `json:"id"`
	Class      []string   `json:"class"`
	Attributes Attributes `json:"attributes"`
}

// RawResultItem is a single ranked result as returned by the Spinque API
type RawResultItem struct {
	Rank        int          `json:"rank"`
	Probability float64      `json:"probability"`
	Tuple       []tupleEntry `json:"tuple"`
}

// ID returns the record identifier, or "" for an empty tuple
func (item *RawResultItem) ID() string {
	if len(item.Tuple) == 0 {
		return ""
	}
	return item.Tuple[0].ID
}

// Classes returns the class URIs of the record
func (item *RawResultItem) Classes() []string {
	if len(item.Tuple) == 0 {
		return nil
	}
	return item.Tuple[0].Class
}

// Attributes returns the record's attribute bag (never nil)
func (item *RawResultItem) Attributes() Attributes {
	if len(item.Tuple) == 0 || item.Tuple[0].Attributes == nil {
		return Attributes{}
	}
	return item.Tuple[0].Attributes
}

// Category derives the content category from the last path segment of the
// first class URI. Records without a class fall back to "unknown".
func (item *RawResultItem) Category() string {
	classes := item.Classes()
	if len(classes) == 0 || classes[0] == "" {
		return "unknown"
	}
	segments := strings.Split(classes[0], "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "unknown"
	}
	return last
}

// ResultPage is the first element of the Spinque search response tuple
type ResultPage struct {
	Offset int             `json:"offset"`
	Count  int             `json:"count"`
	Type   []string        `json:"type"`
	Items  []RawResultItem `json:"items"`
}

// SearchStats is the second element of the Spinque search response tuple
type SearchStats struct {
	Total int               `json:"total"`
	Stats []SearchStatEntry `json:"stats"`
}

// SearchStatEntry is one probability-cutoff bucket in the stats block
type SearchStatEntry struct {
	Cutoff     string `json:"cutoff"`
	NumResults int    `json:"numResults"`
}
