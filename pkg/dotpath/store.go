// Package dotpath provides a nested map addressed by dot-delimited paths.
package dotpath

import (
	"strings"
)

// Separator splits path segments.
const Separator = "."

// Store wraps a nested map[string]any. Paths like "address.postal_code"
// address nested maps; intermediate maps are created on Set.
//
// A nil value is treated as absent by Get and Has.
type Store struct {
	data map[string]any
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: map[string]any{}}
}

// From wraps m without copying it. A nil map yields an empty Store.
func From(m map[string]any) *Store {
	if m == nil {
		m = map[string]any{}
	}
	return &Store{data: m}
}

// Set writes value at path, creating intermediate maps. A non-map value
// found along the path is replaced by a new map.
func (s *Store) Set(path string, value any) *Store {
	segments := strings.Split(path, Separator)
	parent := s.data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := parent[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			parent[seg] = next
		}
		parent = next
	}
	parent[segments[len(segments)-1]] = value
	return s
}

// SetKey writes value under a single top-level key. The key is not split.
func (s *Store) SetKey(key string, value any) *Store {
	s.data[key] = value
	return s
}

// Get returns the value at path, or def when any segment is missing, is
// not a map, or holds nil.
func (s *Store) Get(path string, def any) any {
	v, ok := s.lookup(path)
	if !ok || v == nil {
		return def
	}
	return v
}

// Has reports whether a non-nil value exists at path.
func (s *Store) Has(path string) bool {
	v, ok := s.lookup(path)
	return ok && v != nil
}

// Remove deletes the value at path. Missing segments are not an error.
func (s *Store) Remove(path string) *Store {
	segments := strings.Split(path, Separator)
	parent := s.data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := parent[seg].(map[string]any)
		if !ok {
			return s
		}
		parent = next
	}
	delete(parent, segments[len(segments)-1])
	return s
}

// Map returns the underlying map. Later mutations through the Store are
// visible to the caller.
func (s *Store) Map() map[string]any {
	return s.data
}

// Len returns the number of top-level keys.
func (s *Store) Len() int {
	return len(s.data)
}

// String returns the value at path if it is a string.
func (s *Store) String(path string) (string, bool) {
	v, ok := s.Get(path, nil).(string)
	return v, ok
}

// Submap returns the nested map at path.
func (s *Store) Submap(path string) (map[string]any, bool) {
	v, ok := s.Get(path, nil).(map[string]any)
	return v, ok
}

// Float returns the value at path as a float64 when it holds any Go
// numeric type.
func (s *Store) Float(path string) (float64, bool) {
	switch v := s.Get(path, nil).(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// Int returns the value at path as an int when it holds an integral
// numeric type or a float64 without a fractional part.
func (s *Store) Int(path string) (int, bool) {
	switch v := s.Get(path, nil).(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// Bool returns the value at path if it is a bool.
func (s *Store) Bool(path string) (bool, bool) {
	v, ok := s.Get(path, nil).(bool)
	return v, ok
}

func (s *Store) lookup(path string) (any, bool) {
	segments := strings.Split(path, Separator)
	var cur any = s.data
	for _, seg := range segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
