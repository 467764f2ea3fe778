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
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	_ json.Marshaler   = (*Map[int])(nil)
	_ json.Unmarshaler = (*Map[int])(nil)
	_ json.Marshaler   = (*NamedMap[string, int])(nil)
	_ json.Unmarshaler = (*NamedMap[string, int])(nil)

	nullBytes = []byte("null")

	errNotBijective = errors.New("dualmap: entries are not one-to-one")
)

// MarshalJSON encodes the forward side as a JSON object. Reverse entries
// orphaned by a key-reuse Put are not part of the forward side and do not
// survive an encode/decode round trip.
func (m *Map[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.forward)
}

// UnmarshalJSON decodes a JSON object into the forward side and rebuilds the
// reverse side from it. Fails if the entries are not one-to-one. A null
// payload yields an empty Map.
func (m *Map[K]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullBytes) {
		if m.forward == nil {
			m.forward = make(map[K]K)
			m.reverse = make(map[K]K)
		}
		return nil
	}
	var forward map[K]K
	if err := json.Unmarshal(b, &forward); err != nil {
		return errors.Wrap(err, "dualmap: decoding map")
	}
	reverse, err := invert(forward)
	if err != nil {
		return err
	}
	m.forward = forward
	m.reverse = reverse
	return nil
}

type namedMapJSON[N, K comparable] struct {
	Names   [2]N    `json:"names"`
	Entries map[K]K `json:"entries"`
}

// MarshalJSON encodes the side names in declaration order together with the
// first side's entries. Opposite-side entries orphaned by a key-reuse Put
// are not part of the first side and do not survive an encode/decode round
// trip.
func (m *NamedMap[N, K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(namedMapJSON[N, K]{
		Names:   [2]N{m.nameA, m.nameB},
		Entries: m.sideA,
	})
}

// UnmarshalJSON decodes the representation produced by MarshalJSON,
// rebuilding the second side from the first. Fails if the names collide or
// the entries are not one-to-one. A null payload leaves the receiver
// unchanged, so decoding null is only meaningful on a receiver built by
// NewNamed; a zero-value receiver stays unusable (its side names are
// undeclared).
func (m *NamedMap[N, K]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullBytes) {
		return nil
	}
	var decoded namedMapJSON[N, K]
	if err := json.Unmarshal(b, &decoded); err != nil {
		return errors.Wrap(err, "dualmap: decoding named map")
	}
	if decoded.Names[0] == decoded.Names[1] {
		return errors.Wrapf(ErrDuplicateName, "name %v", decoded.Names[0])
	}
	sideA := decoded.Entries
	if sideA == nil {
		sideA = make(map[K]K)
	}
	sideB, err := invert(sideA)
	if err != nil {
		return err
	}
	m.nameA = decoded.Names[0]
	m.nameB = decoded.Names[1]
	m.sideA = sideA
	m.sideB = sideB
	return nil
}

func invert[K comparable](side map[K]K) (map[K]K, error) {
	inverse := make(map[K]K, len(side))
	for k, v := range side {
		inverse[v] = k
	}
	if len(inverse) != len(side) {
		return nil, errNotBijective
	}
	return inverse, nil
}
