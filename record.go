package dsv

import (
	"bytes"
	"encoding/json"
	"slices"
)

// A Record maps unique header keys to field values, preserving the
// header order. Values are one of string, float64, bool, nil, []any or
// map[string]any, depending on the coercion options in effect.
type Record struct {
	keys   []string
	values map[string]any
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.keys)
}

// Keys returns the record's keys in header order.
func (r Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Get returns the value stored under key and whether the key exists.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil if absent.
func (r Record) Value(key string) any {
	return r.values[key]
}

// MarshalJSON encodes the record as a JSON object whose members appear
// in header order.
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
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) set(key string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}
