// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package translate converts raw backend payloads into models entities.
//
// The backend is inconsistent about field names (ideaId vs ideaID, userId vs
// submittedByUserId) and about which fields are present at all. Each entity
// translator therefore resolves every field from an ordered list of aliases
// and takes the first non-empty candidate, applying a fixed default when none
// is present.
package translate

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Record is one raw JSON object from the backend.
type Record map[string]any

// Decode parses a single JSON object.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := newDecoder(data).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return r, nil
}

// DecodeList parses a JSON array of objects. A wrapper object holding the
// array under data, items or $values is unwrapped.
func DecodeList(data []byte) ([]Record, error) {
	var raw any
	if err := newDecoder(data).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		return []Record{}, nil
	case []any:
		return toRecords(v), nil
	case map[string]any:
		if list := Record(v).Records("data", "items", "$values"); list != nil {
			return list, nil
		}
		return nil, fmt.Errorf("decode list: object has no data, items or $values array")
	default:
		return nil, fmt.Errorf("decode list: unexpected JSON %T", raw)
	}
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func toRecords(items []any) []Record {
	out := make([]Record, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// String returns the first non-empty alias rendered as text. Numbers keep
// their literal form so numeric ids and GUIDs end up in the same shape.
func (r Record) String(aliases ...string) string {
	for _, key := range aliases {
		if s := scalarString(r[key]); s != "" {
			return s
		}
	}
	return ""
}

// StringOr is String with a fallback.
func (r Record) StringOr(def string, aliases ...string) string {
	if s := r.String(aliases...); s != "" {
		return s
	}
	return def
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Int returns the first alias that holds a number, or 0.
func (r Record) Int(aliases ...string) int {
	for _, key := range aliases {
		switch t := r[key].(type) {
		case json.Number:
			if n, err := t.Int64(); err == nil {
				return int(n)
			}
			if f, err := t.Float64(); err == nil {
				return int(f)
			}
		case float64:
			return int(t)
		case int:
			return t
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				return n
			}
		}
	}
	return 0
}

// BoolOr returns the first alias holding a boolean, or def.
func (r Record) BoolOr(def bool, aliases ...string) bool {
	for _, key := range aliases {
		switch t := r[key].(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b
			}
		}
	}
	return def
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time returns the first alias that parses as a timestamp. Timestamps
// without a zone are taken as UTC.
func (r Record) Time(aliases ...string) (time.Time, bool) {
	for _, key := range aliases {
		s, ok := r[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// Record returns the first alias holding a nested object.
func (r Record) Record(aliases ...string) Record {
	for _, key := range aliases {
		if m, ok := r[key].(map[string]any); ok {
			return Record(m)
		}
	}
	return nil
}

// Records returns the first alias holding an array of objects. It returns
// nil when no alias holds an array.
func (r Record) Records(aliases ...string) []Record {
	for _, key := range aliases {
		if items, ok := r[key].([]any); ok {
			return toRecords(items)
		}
	}
	return nil
}
