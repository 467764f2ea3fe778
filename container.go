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
	"fmt"
	"strings"
)

// Container is the base contract shared by both dual map variants.
type Container[K comparable] interface {
	Len() int
	IsEmpty() bool
	Clear()
	Entries() []Pair[K]
	String() string
}

// renderSide prints one side map as a sequence of pairs. Enumeration order
// is the underlying map's.
func renderSide[K comparable](side map[K]K) string {
	var b strings.Builder
	b.WriteString("[")

	first := true
	for k, v := range side {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%v, %v)", k, v)
		first = false
	}
	b.WriteString("]")
	return b.String()
}

func sideEntries[K comparable](side map[K]K) []Pair[K] {
	entries := make([]Pair[K], 0, len(side))
	for k, v := range side {
		entries = append(entries, Pair[K]{Key: k, Value: v})
	}
	return entries
}
