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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapJSON(t *testing.T) {
	m := NewFrom(PairOf("ns1", "192.168.0.2"), PairOf("ns2", "192.168.0.3"))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := New[string]()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, m.Equal(decoded))

	v, ok := decoded.Get("192.168.0.2")
	require.True(t, ok)
	assert.Equal(t, "ns1", v)
}

func TestMapJSONNull(t *testing.T) {
	m := New[string]()
	require.NoError(t, json.Unmarshal([]byte("null"), m))
	assert.True(t, m.IsEmpty())

	// a zero-value receiver comes out usable
	var zero Map[string]
	require.NoError(t, json.Unmarshal([]byte("null"), &zero))
	assert.True(t, zero.IsEmpty())
	zero.Put("x", "y")
	assert.Equal(t, "y", zero.MustGet("x"))
}

func TestMapJSONDropsOrphanedInverseEntries(t *testing.T) {
	m := New[string]()
	m.Put("x", "y")
	m.Put("x", "z")
	require.Equal(t, 2, len(m.Inverse()))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := New[string]()
	require.NoError(t, json.Unmarshal(data, decoded))

	// only the forward side is encoded; the orphaned entry is gone
	assert.Equal(t, map[string]string{"x": "z"}, decoded.Forward())
	assert.Equal(t, map[string]string{"z": "x"}, decoded.Inverse())
	assert.False(t, m.Equal(decoded))
}

func TestMapJSONNotBijective(t *testing.T) {
	m := New[string]()
	err := json.Unmarshal([]byte(`{"a":"x","b":"x"}`), m)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotBijective)
}

func TestNamedMapJSON(t *testing.T) {
	m, err := NewNamedFrom("hostname", "ip",
		PairOf("ns1", "192.168.0.2"),
		PairOf("ns2", "192.168.0.3"),
	)
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded NamedMap[string, string]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equal(&decoded))

	first, second := decoded.Names()
	assert.Equal(t, "hostname", first)
	assert.Equal(t, "ip", second)
	assert.Equal(t, "ns2", decoded.MustGet("ip", "192.168.0.3"))
}

func TestNamedMapJSONRejectsBadPayloads(t *testing.T) {
	var m NamedMap[string, string]

	err := json.Unmarshal([]byte(`{"names":["a","a"],"entries":{}}`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)

	err = json.Unmarshal([]byte(`{"names":["a","b"],"entries":{"x":"1","y":"1"}}`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotBijective)
}

func TestNamedMapJSONNull(t *testing.T) {
	m, err := NewNamedFrom("hostname", "ip", PairOf("ns1", "192.168.0.2"))
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal([]byte("null"), m))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "ns1", m.MustGet("ip", "192.168.0.2"))
}

func TestNamedMapJSONEmptyEntries(t *testing.T) {
	var m NamedMap[string, string]
	require.NoError(t, json.Unmarshal([]byte(`{"names":["a","b"]}`), &m))
	assert.True(t, m.IsEmpty())

	m.PutOrdered("x", "y")
	assert.Equal(t, 1, m.Len())
}
