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

// ErrDuplicateName is returned when a NamedMap is constructed with the same
// name for both sides.
var ErrDuplicateName = errors.New("dualmap: the two side names must differ")

var _ Container[string] = (*NamedMap[string, string])(nil)

// NamedMap is a bidirectional map whose two sides carry caller-supplied
// names. Every operation states the side it addresses by name; the ordered
// operations use the first declared name. The two sides are fixed slots, so
// name resolution is a two-way comparison rather than a map lookup.
//
// Addressing a side by a name that was not declared at construction is a
// programming error and panics.
//
// A NamedMap must be created with NewNamed or NewNamedFrom. It is not
// synchronized: a writer requires exclusive access.
type NamedMap[N, K comparable] struct {
	nameA, nameB N
	sideA, sideB map[K]K
}

// NewNamed creates an empty NamedMap with the two side names in declaration
// order. The names must differ.
func NewNamed[N, K comparable](first, second N) (*NamedMap[N, K], error) {
	if first == second {
		return nil, errors.Wrapf(ErrDuplicateName, "name %v", first)
	}
	return &NamedMap[N, K]{
		nameA: first,
		nameB: second,
		sideA: make(map[K]K),
		sideB: make(map[K]K),
	}, nil
}

// NewNamedFrom creates a NamedMap pre-populated with the given pairs,
// inserted left to right with declared orientation. Later pairs win on
// conflict.
func NewNamedFrom[N, K comparable](first, second N, pairs ...Pair[K]) (*NamedMap[N, K], error) {
	m, err := NewNamed[N, K](first, second)
	if err != nil {
		return nil, err
	}
	m.PutOrderedAll(pairs...)
	return m, nil
}

// side resolves a name to its slot and the opposite slot.
func (m *NamedMap[N, K]) side(name N) (own, opposite map[K]K) {
	switch name {
	case m.nameA:
		return m.sideA, m.sideB
	case m.nameB:
		return m.sideB, m.sideA
	default:
		panic(errors.Errorf("dualmap: unknown side name: %v", name))
	}
}

// Names returns the two side names in declaration order.
func (m *NamedMap[N, K]) Names() (first, second N) {
	return m.nameA, m.nameB
}

// Opposite returns the name of the other side.
func (m *NamedMap[N, K]) Opposite(name N) N {
	switch name {
	case m.nameA:
		return m.nameB
	case m.nameB:
		return m.nameA
	default:
		panic(errors.Errorf("dualmap: unknown side name: %v", name))
	}
}

// Put inserts the pair (key, value), key on the named side and value on the
// opposite side. Exactly two cells are written. If key was already present
// on that side with a different value, the old value's entry on the opposite
// side is left behind; re-keying safely requires deleting the old pair
// first.
func (m *NamedMap[N, K]) Put(side N, key, value K) {
	own, opposite := m.side(side)
	own[key] = value
	opposite[value] = key
}

// PutAll applies Put on the named side to each pair, left to right.
func (m *NamedMap[N, K]) PutAll(side N, pairs ...Pair[K]) {
	own, opposite := m.side(side)
	for _, p := range pairs {
		own[p.Key] = p.Value
		opposite[p.Value] = p.Key
	}
}

// PutOrdered inserts the pair with key on the first declared side.
func (m *NamedMap[N, K]) PutOrdered(key, value K) {
	m.Put(m.nameA, key, value)
}

// PutOrderedAll applies PutOrdered to each pair, left to right.
func (m *NamedMap[N, K]) PutOrderedAll(pairs ...Pair[K]) {
	m.PutAll(m.nameA, pairs...)
}

// Get returns the element paired with key on the named side.
func (m *NamedMap[N, K]) Get(side N, key K) (K, bool) {
	own, _ := m.side(side)
	v, ok := own[key]
	return v, ok
}

// GetOrDefault returns the element paired with key on the named side, or def
// if key is absent.
func (m *NamedMap[N, K]) GetOrDefault(side N, key, def K) K {
	if v, ok := m.Get(side, key); ok {
		return v
	}
	return def
}

// MustGet is like Get but panics if key is absent from the named side.
func (m *NamedMap[N, K]) MustGet(side N, key K) K {
	v, ok := m.Get(side, key)
	if !ok {
		panic(errors.Errorf("dualmap: key not found on side %v: %v", side, key))
	}
	return v
}

// Delete removes the pairs keyed by the given elements on the named side,
// left to right. Both halves of each pair are removed together. Absent keys
// are ignored.
func (m *NamedMap[N, K]) Delete(side N, keys ...K) {
	own, opposite := m.side(side)
	for _, k := range keys {
		v, ok := own[k]
		if !ok {
			continue
		}
		delete(own, k)
		delete(opposite, v)
	}
}

// SideMap returns a snapshot of the named side. Mutating it does not affect
// the NamedMap.
func (m *NamedMap[N, K]) SideMap(side N) map[K]K {
	own, _ := m.side(side)
	return maps.Clone(own)
}

// Keys returns the keys of the named side, in unspecified order.
func (m *NamedMap[N, K]) Keys(side N) []K {
	own, _ := m.side(side)
	return maps.Keys(own)
}

// Values returns the values of the named side, in unspecified order.
func (m *NamedMap[N, K]) Values(side N) []K {
	own, _ := m.side(side)
	return maps.Values(own)
}

// Entries returns the stored pairs oriented from the first declared side.
func (m *NamedMap[N, K]) Entries() []Pair[K] {
	return sideEntries(m.sideA)
}

// EntriesInverted returns the stored pairs oriented from the second declared
// side.
func (m *NamedMap[N, K]) EntriesInverted() []Pair[K] {
	return sideEntries(m.sideB)
}

// Len returns the number of pairs, counted on the first declared side.
func (m *NamedMap[N, K]) Len() int {
	return len(m.sideA)
}

// IsEmpty reports whether the NamedMap holds no pairs.
func (m *NamedMap[N, K]) IsEmpty() bool {
	return len(m.sideA) == 0 && len(m.sideB) == 0
}

// Clear removes all pairs. The side names are kept.
func (m *NamedMap[N, K]) Clear() {
	m.sideA = make(map[K]K)
	m.sideB = make(map[K]K)
}

// Contains reports whether elem is present as a key on either side.
func (m *NamedMap[N, K]) Contains(elem K) bool {
	if _, ok := m.sideA[elem]; ok {
		return true
	}
	_, ok := m.sideB[elem]
	return ok
}

// ContainsPair reports whether the pair (a, b) is stored, in either
// orientation.
func (m *NamedMap[N, K]) ContainsPair(a, b K) bool {
	if v, ok := m.sideA[a]; ok && v == b {
		return true
	}
	v, ok := m.sideB[a]
	return ok && v == b
}

// Equal reports structural equality: same names in the same order and
// identical side maps.
func (m *NamedMap[N, K]) Equal(other *NamedMap[N, K]) bool {
	if other == nil {
		return false
	}
	return m.nameA == other.nameA && m.nameB == other.nameB &&
		maps.Equal(m.sideA, other.sideA) &&
		maps.Equal(m.sideB, other.sideB)
}

// String renders the pairs oriented from the first declared side.
func (m *NamedMap[N, K]) String() string {
	return renderSide(m.sideA)
}

// StringInverted renders the pairs oriented from the second declared side.
func (m *NamedMap[N, K]) StringInverted() string {
	return renderSide(m.sideB)
}
