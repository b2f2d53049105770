package record

import "slices"

// Map is an insertion-ordered string-keyed mapping. Field order is part of
// the emitted document, so records never use Go maps for their attributes.
//
// Values are one of: string, bool, int, float64, []float64, []string,
// []bool, []any, *Map, Ref, []Ref, *Record or []*Record.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores value under key, appending the key if it is new.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]

	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })

	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Range calls fn for every entry in order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of the map. Nested maps and slices are copied;
// *Record values stay shared because they are references, not owned data.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := NewMap()
	for _, k := range m.keys {
		out.Set(k, CloneValue(m.values[k]))
	}

	return out
}

// CloneValue deep-copies a field value with the same rules as Map.Clone.
func CloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []float64:
		return slices.Clone(val)
	case []string:
		return slices.Clone(val)
	case []bool:
		return slices.Clone(val)
	case []Ref:
		return slices.Clone(val)
	case []*Record:
		return slices.Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}

		return out
	default:
		return v
	}
}
