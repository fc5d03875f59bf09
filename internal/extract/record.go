// Package extract turns free-form completions into structured records.
//
// Extraction never fails: every input ends either in a parsed JSON object or in
// the two-key degraded record {"error", "raw_response"}.
package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Keys of the degraded record.
const (
	ErrorKey       = "error"
	RawResponseKey = "raw_response"
)

// Record is a parsed JSON object. Accessors never panic on missing keys or
// unexpected value types; they return zero values instead.
type Record map[string]any

// Degraded builds the fallback record returned when no strategy succeeds.
func Degraded(message, raw string) Record {
	return Record{ErrorKey: message, RawResponseKey: raw}
}

// IsDegraded reports whether the record is the error fallback.
func (r Record) IsDegraded() bool {
	_, ok := r[ErrorKey]
	return ok
}

// ErrorMessage returns the error message of a degraded record.
func (r Record) ErrorMessage() string {
	return r.String(ErrorKey)
}

// RawResponse returns the original completion text kept by a degraded record.
func (r Record) RawResponse() string {
	return r.String(RawResponseKey)
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the value at key formatted as text. Numbers and booleans are
// rendered, nested values yield "".
func (r Record) String(key string) string {
	return asString(r[key])
}

// Float returns the numeric value at key. Numeric strings are accepted.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the boolean at key; anything else is false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Strings returns the list at key with every element formatted as text.
func (r Record) Strings(key string) []string {
	items, _ := r[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Record returns the nested object at key, or an empty record.
func (r Record) Record(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// Records returns the objects of the list at key, skipping other element types.
func (r Record) Records(key string) []Record {
	items, _ := r[key].([]any)
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// JSON renders the record as indented JSON.
func (r Record) JSON() string {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(r))
	}
	return string(data)
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
