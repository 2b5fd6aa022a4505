// Package docstore is a thin read-only facade over the document store:
// named collections of JSON documents addressable by id. It is the only
// layer that sees raw field maps; everything heterogeneous (in particular
// the three historical timestamp encodings) is normalized here so the
// section services never branch on source representation.
package docstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a document does not exist.
// Renderers treat it the same as an empty collection: keep the default view.
var ErrNotFound = errors.New("document not found")

// Store is the read surface. No query filtering, no pagination.
type Store interface {
	// Get returns a whole-document snapshot by collection and id.
	Get(ctx context.Context, collection, id string) (Document, error)
	// List returns every document in a collection in stable id order.
	List(ctx context.Context, collection string) ([]Document, error)
}

// Document is one (id, field map) pair.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Has reports whether the field exists with a non-nil value.
func (d Document) Has(key string) bool {
	v, ok := d.Fields[key]
	return ok && v != nil
}

// String returns the field as a string, or "" when absent or not a string.
func (d Document) String(key string) string {
	if s, ok := d.Fields[key].(string); ok {
		return s
	}
	return ""
}

// Int returns the field as an int. JSON numbers decode as float64.
func (d Document) Int(key string) int {
	switch v := d.Fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// Maps returns the field as a list of nested objects (e.g. the projects
// embedded in a work document). Non-object entries are dropped.
func (d Document) Maps(key string) []map[string]interface{} {
	list, ok := d.Fields[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// Instant normalizes the field into a canonical time.Time. Historical data
// carries three encodings: a native timestamp, a parsable date string, or
// an epoch-seconds map ({"seconds": n}). Returns ok=false when the field
// is absent or unparsable; the zero time is never meant for display.
func (d Document) Instant(key string) (time.Time, bool) {
	return NormalizeInstant(d.Fields[key])
}

var stringLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"January 2, 2006",
	"Jan 2006",
}

// NormalizeInstant converts any supported timestamp representation into a
// time.Time.
func NormalizeInstant(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, true
	case string:
		for _, layout := range stringLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case map[string]interface{}:
		if secs, ok := t["seconds"].(float64); ok {
			return time.Unix(int64(secs), 0).UTC(), true
		}
		return time.Time{}, false
	case float64:
		// Bare epoch seconds show up in a few migrated rows.
		return time.Unix(int64(t), 0).UTC(), true
	}
	return time.Time{}, false
}
