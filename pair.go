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

import "fmt"

// Pair is one association held by a dual map: Key on one side, Value on the
// opposite side. Both elements share one type, since a value on one side is
// a key on the other.
type Pair[K comparable] struct {
	Key   K
	Value K
}

// PairOf builds a Pair from its two elements.
func PairOf[K comparable](key, value K) Pair[K] {
	return Pair[K]{Key: key, Value: value}
}

// Swap returns the pair with its orientation reversed.
func (p Pair[K]) Swap() Pair[K] {
	return Pair[K]{Key: p.Value, Value: p.Key}
}

func (p Pair[K]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
