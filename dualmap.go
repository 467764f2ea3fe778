// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dualmap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

var _ Container[string] = (*Map[string])(nil)

// Map is a bidirectional map with two unnamed sides. Lookup, deletion and
// membership take any element and probe the forward side first, then the
// reverse side, so callers never state which side an element lives on.
//
// A Map must be created with New or NewFrom. It is not synchronized: a
// writer requires exclusive access.
type Map[K comparable] struct {
	forward map[K]K
	reverse map[K]K
}

// New creates an empty Map.
func New[K comparable]() *Map[K] {
	return &Map[K]{
		forward: make(map[K]K),
		reverse: make(map[K]K),
	}
}

// NewFrom creates a Map pre-populated with the given pairs, inserted left to
// right with forward orientation. Later pairs win on conflict.
func NewFrom[K comparable](pairs ...Pair[K]) *Map[K] {
	m := New[K]()
	m.PutAll(pairs...)
	return m
}

// Put inserts the pair (key, value), key on the forward side. Exactly two
// cells are written: forward[key] and reverse[value]. If key was already
// present with a different value, the old value's reverse entry is left
// behind; re-keying safely requires deleting the old pair first.
func (m *Map[K]) Put(key, value K) {
	m.forward[key] = value
	m.reverse[value] = key
}

// PutInverted inserts the pair (key, value) with key on the reverse side.
func (m *Map[K]) PutInverted(key, value K) {
	m.reverse[key] = value
	m.forward[value] = key
}

// PutAll applies Put to each pair, left to right.
func (m *Map[K]) PutAll(pairs ...Pair[K]) {
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
}

// Get returns the element paired with elem, probing the forward side first.
func (m *Map[K]) Get(elem K) (K, bool) {
	if v, ok := m.forward[elem]; ok {
		return v, true
	}
	v, ok := m.reverse[elem]
	return v, ok
}

// GetOrDefault returns the element paired with elem, or def if elem is not
// present on either side.
func (m *Map[K]) GetOrDefault(elem, def K) K {
	if v, ok := m.Get(elem); ok {
		return v
	}
	return def
}

// MustGet is like Get but panics if elem is not present on either side.
func (m *Map[K]) MustGet(elem K) K {
	v, ok := m.Get(elem)
	if !ok {
		panic(errors.Errorf("dualmap: element not found: %v", elem))
	}
	return v
}

// Delete removes the pairs containing the given elements, each probed on the
// forward side first. Absent elements are ignored.
func (m *Map[K]) Delete(elems ...K) {
	for _, e := range elems {
		if v, ok := m.forward[e]; ok {
			delete(m.forward, e)
			delete(m.reverse, v)
			continue
		}
		if k, ok := m.reverse[e]; ok {
			delete(m.reverse, e)
			delete(m.forward, k)
		}
	}
}

// Contains reports whether elem is present on either side.
func (m *Map[K]) Contains(elem K) bool {
	if _, ok := m.forward[elem]; ok {
		return true
	}
	_, ok := m.reverse[elem]
	return ok
}

// ContainsPair reports whether the pair (a, b) is stored, in either
// orientation.
func (m *Map[K]) ContainsPair(a, b K) bool {
	if v, ok := m.forward[a]; ok && v == b {
		return true
	}
	v, ok := m.reverse[a]
	return ok && v == b
}

// Keys returns the elements of the forward side, in unspecified order.
func (m *Map[K]) Keys() []K {
	return maps.Keys(m.forward)
}

// Values returns the elements paired with the forward keys, in unspecified
// order.
func (m *Map[K]) Values() []K {
	return maps.Values(m.forward)
}

// KeysInverted returns the elements of the reverse side, in unspecified
// order.
func (m *Map[K]) KeysInverted() []K {
	return maps.Keys(m.reverse)
}

// ValuesInverted returns the elements paired with the reverse keys, in
// unspecified order.
func (m *Map[K]) ValuesInverted() []K {
	return maps.Values(m.reverse)
}

// Forward returns a snapshot of the forward side. Mutating it does not
// affect the Map.
func (m *Map[K]) Forward() map[K]K {
	return maps.Clone(m.forward)
}

// Inverse returns a snapshot of the reverse side.
func (m *Map[K]) Inverse() map[K]K {
	return maps.Clone(m.reverse)
}

// Entries returns the stored pairs with forward orientation.
func (m *Map[K]) Entries() []Pair[K] {
	return sideEntries(m.forward)
}

// EntriesInverted returns the stored pairs with reverse orientation.
func (m *Map[K]) EntriesInverted() []Pair[K] {
	return sideEntries(m.reverse)
}

// Len returns the number of pairs, counted on the forward side.
func (m *Map[K]) Len() int {
	return len(m.forward)
}

// IsEmpty reports whether the Map holds no pairs.
func (m *Map[K]) IsEmpty() bool {
	return len(m.forward) == 0 && len(m.reverse) == 0
}

// Clear removes all pairs.
func (m *Map[K]) Clear() {
	m.forward = make(map[K]K)
	m.reverse = make(map[K]K)
}

// Equal reports structural equality: both side maps identical.
func (m *Map[K]) Equal(other *Map[K]) bool {
	if other == nil {
		return false
	}
	return maps.Equal(m.forward, other.forward) &&
		maps.Equal(m.reverse, other.reverse)
}

// String renders the pairs with forward orientation.
func (m *Map[K]) String() string {
	return renderSide(m.forward)
}

// StringInverted renders the pairs with reverse orientation.
func (m *Map[K]) StringInverted() string {
	return renderSide(m.reverse)
}
