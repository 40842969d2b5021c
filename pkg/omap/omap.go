// Package omap implements the ordered associative array the sorting and
// set-algebra engines operate on: a sequence of key/value entries that
// preserves insertion order and supports O(1) key lookup.
//
// Values are opaque to the container. The comparison strategies in
// pkg/compare handle nil, bool, int64, float64, and string.
package omap

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by FromEntries when two entries share a key.
var ErrDuplicateKey = errors.New("duplicate key")

// Entry is one key/value slot.
type Entry struct {
	Key   Key
	Value any
}

// Array is an ordered associative array. Entry order is insertion order
// until a sort replaces the sequence wholesale; the index always mirrors
// the sequence.
type Array struct {
	entries []Entry
	index   map[Key]int
	nextInt int64 // next key assigned by Append
}

// New returns an empty array.
func New() *Array {
	return &Array{index: make(map[Key]int)}
}

// FromValues builds a list-style array: values at sequential integer keys
// starting from 0.
func FromValues(values ...any) *Array {
	a := New()
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// FromEntries builds an array from an explicit entry sequence. The
// sequence becomes the array's order as given. Duplicate keys are
// rejected so that a permutation of a valid array is always valid.
func FromEntries(entries []Entry) (*Array, error) {
	a := &Array{
		entries: make([]Entry, len(entries)),
		index:   make(map[Key]int, len(entries)),
	}
	copy(a.entries, entries)
	for i, e := range a.entries {
		if _, ok := a.index[e.Key]; ok {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Key, ErrDuplicateKey)
		}
		a.index[e.Key] = i
		if !e.Key.IsString() && e.Key.Int() >= a.nextInt {
			a.nextInt = e.Key.Int() + 1
		}
	}
	return a, nil
}

// Set stores value under key. A new key is appended at the end; an
// existing key keeps its position and gets the new value.
func (a *Array) Set(key Key, value any) {
	if i, ok := a.index[key]; ok {
		a.entries[i].Value = value
		return
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, Entry{Key: key, Value: value})
	if !key.IsString() && key.Int() >= a.nextInt {
		a.nextInt = key.Int() + 1
	}
}

// Append stores value under the next unused integer key, one past the
// largest integer key ever set.
func (a *Array) Append(value any) Key {
	k := IntKey(a.nextInt)
	a.Set(k, value)
	return k
}

// Get returns the value stored under key.
func (a *Array) Get(key Key) (any, bool) {
	i, ok := a.index[key]
	if !ok {
		return nil, false
	}
	return a.entries[i].Value, true
}

// Has reports whether key is present.
func (a *Array) Has(key Key) bool {
	_, ok := a.index[key]
	return ok
}

// Delete removes key, preserving the order of the remaining entries.
// It reports whether the key was present.
func (a *Array) Delete(key Key) bool {
	i, ok := a.index[key]
	if !ok {
		return false
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	delete(a.index, key)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].Key] = j
	}
	return true
}

// Len returns the number of entries.
func (a *Array) Len() int { return len(a.entries) }

// At returns the entry at position i in the current order.
func (a *Array) At(i int) Entry { return a.entries[i] }

// Entries returns a copy of the entry sequence in the current order.
func (a *Array) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Keys returns the keys in the current order.
func (a *Array) Keys() []Key {
	out := make([]Key, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in the current order.
func (a *Array) Values() []any {
	out := make([]any, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Value
	}
	return out
}

// Clone returns an independent copy with the same entries and order.
func (a *Array) Clone() *Array {
	c := &Array{
		entries: make([]Entry, len(a.entries)),
		index:   make(map[Key]int, len(a.entries)),
		nextInt: a.nextInt,
	}
	copy(c.entries, a.entries)
	for k, i := range a.index {
		c.index[k] = i
	}
	return c
}
