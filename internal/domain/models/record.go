package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

// Record is one row returned by the store: an ordered mapping from column name to scalar.
// The key set comes from the procedure definition, so nothing here assumes a schema.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord pairs columns with values in column order.
func NewRecord(columns []string, values []any) Record {
	r := Record{
		keys:   make([]string, 0, len(columns)),
		values: make(map[string]any, len(columns)),
	}
	for i, col := range columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.Set(col, v)
	}
	return r
}

// Set assigns key, appending it to the key order when new.
func (r *Record) Set(key string, v any) {
	if r.values == nil {
		r.values = map[string]any{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Lookup returns the first present key, ignoring ASCII case.
func (r Record) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r.values[k]; ok {
			return v, true
		}
	}
	for _, k := range keys {
		for _, have := range r.keys {
			if strings.EqualFold(have, k) {
				return r.values[have], true
			}
		}
	}
	return nil, false
}

// Keys returns a copy of the key order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Normalize returns a copy with every key passed through utils.CamelKey. Values are untouched.
// When two columns collapse onto the same key the first position is kept and the later value wins.
func (r Record) Normalize() Record {
	out := Record{
		keys:   make([]string, 0, len(r.keys)),
		values: make(map[string]any, len(r.keys)),
	}
	for _, k := range r.keys {
		out.Set(utils.CamelKey(k), r.values[k])
	}
	return out
}

// Text renders the value at key as text; nil and missing become "".
func (r Record) Text(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	return ScalarText(v)
}

// Int64 reads a numeric value at key; non-numeric text yields 0.
func (r Record) Int64(keys ...string) int64 {
	v, ok := r.Lookup(keys...)
	if !ok {
		return 0
	}
	return ScalarInt64(v)
}

// Time reads a DATE/DATETIME value at key.
func (r Record) Time(keys ...string) (time.Time, bool) {
	v, ok := r.Lookup(keys...)
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		if parsed, err := utils.ParseDate(t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ScalarText converts a store scalar to text the way the UI displays it.
func ScalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// ScalarInt64 converts a store scalar to an integer; unparseable values yield 0.
func ScalarInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint64:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
	case []byte:
		return ScalarInt64(string(t))
	}
	return 0
}
