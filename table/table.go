// Package table provides the immutable lookup contract shared by all
// resichem reference tables.
//
// A Table is a named, read-only mapping from a short uppercase identifier
// (residue code, atom name, element-pair token) to a value. Tables are
// constructed once at package initialization and never mutated; any number
// of goroutines may read them concurrently without locking.
//
// Absence of a key is the only failure mode. Lookup wraps ErrKeyNotFound
// with the table name and the offending key so that callers can report
// exactly which identifier failed to resolve. Whether a miss means "this
// residue has no such property" or "malformed input" is the caller's call;
// the table never substitutes a default value.
package table

import (
	"errors"
	"fmt"
	"sort"
)

// ErrKeyNotFound indicates a lookup key outside a table's declared domain.
var ErrKeyNotFound = errors.New("key not found")

// Table is an immutable named mapping from identifier to value.
type Table[V any] struct {
	name    string
	entries map[string]V
}

// New creates a table with the given name from entries.
// The input map is copied; later mutation of entries does not affect the table.
func New[V any](name string, entries map[string]V) Table[V] {
	copied := make(map[string]V, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return Table[V]{name: name, entries: copied}
}

// Name returns the table name used in error reports.
func (t Table[V]) Name() string {
	return t.name
}

// Len returns the number of entries in the table's domain.
func (t Table[V]) Len() int {
	return len(t.entries)
}

// Has reports whether key is inside the table's domain.
func (t Table[V]) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Lookup returns the value for key. Keys outside the domain fail with an
// error wrapping ErrKeyNotFound that names both the table and the key.
func (t Table[V]) Lookup(key string) (V, error) {
	v, ok := t.entries[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("table %q: %w: %q", t.name, ErrKeyNotFound, key)
	}
	return v, nil
}

// Keys returns the table's domain in sorted order.
// The order is deterministic across processes and lookups.
func (t Table[V]) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the underlying mapping.
// Mutating the copy does not affect the table.
func (t Table[V]) Entries() map[string]V {
	copied := make(map[string]V, len(t.entries))
	for k, v := range t.entries {
		copied[k] = v
	}
	return copied
}
