package lang

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Map is a string-keyed map that remembers insertion order.
// The zero value is an empty map ready to use.
type Map[V comparable] struct {
	keys []string
	vals map[string]V
}

// Set stores v under key. Overwriting a key keeps its original position.
func (m *Map[V]) Set(key string, v V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}

	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.vals[key] = v
}

// Get returns the value stored under key.
func (m Map[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]

	return v, ok
}

// Len returns the number of keys.
func (m Map[V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m Map[V]) Keys() []string { return slices.Clone(m.keys) }

// All iterates over the entries in insertion order.
func (m Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Std returns the entries as a plain Go map.
func (m Map[V]) Std() map[string]V {
	return maps.Clone(m.vals)
}

// Equal reports whether m and o hold the same entries in the same order.
func (m Map[V]) Equal(o Map[V]) bool {
	return slices.Equal(m.keys, o.keys) && maps.Equal(m.vals, o.vals)
}

// MarshalJSON encodes m as a JSON object with keys in insertion order.
func (m Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes m as an ordered YAML mapping.
func (m Map[V]) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(m.keys))
	for k, v := range m.All() {
		out = append(out, yaml.MapItem{Key: k, Value: v})
	}

	return out, nil
}
