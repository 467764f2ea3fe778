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

// Package dualmap provides bidirectional (dual-entry) associative containers.
//
// A dual map stores pairs (a, b) so that either element can be looked up to
// obtain the other. Two variants are provided:
//
//   - Map is the unnamed variant: lookups take any element and probe both
//     sides automatically, the forward side winning when an element exists
//     on both.
//   - NamedMap attaches a caller-supplied name to each side; every operation
//     names the side it addresses, and the "ordered" operations use the
//     names' declaration order.
//
// Both variants keep their two internal maps exact inverses of one another
// across Put and Delete, with one documented exception: re-putting an
// existing key with a different value leaves the old value's inverse entry
// behind (see Map.Put and NamedMap.Put).
//
// The containers are not synchronized. Concurrent readers are safe only in
// the absence of writers; a writer requires exclusive access, since the two
// internal maps are updated as a pair.
package dualmap
