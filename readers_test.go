// Copyright 2025 Google Inc.
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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toonlab/gotoon/pkg/toon"
)

func TestReadJSONKeyOrder(t *testing.T) {
	in := `{"zebra": 1, "apple": {"m": true, "a": null}, "mango": [1, 2.5, "x"]}`
	v, err := readJSON([]byte(in))
	require.NoError(t, err)

	o, ok := v.(*toon.Object)
	require.True(t, ok, "got %T", v)
	require.Equal(t, []string{"zebra", "apple", "mango"}, o.Keys())

	inner, ok := o.Get("apple")
	require.True(t, ok)
	require.Equal(t, []string{"m", "a"}, inner.(*toon.Object).Keys())

	list, _ := o.Get("mango")
	require.Equal(t, []interface{}{int64(1), 2.5, "x"}, list)

	z, _ := o.Get("zebra")
	require.Equal(t, int64(1), z)
}

func TestReadJSONScalars(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want interface{}
	}{
		{`null`, nil},
		{`true`, true},
		{`42`, int64(42)},
		{`3.14`, 3.14},
		{`1e3`, 1000.0},
		{`"text"`, "text"},
		{`[]`, []interface{}{}},
	} {
		v, err := readJSON([]byte(tt.in))
		require.NoError(t, err, tt.in)
		require.True(t, toon.Equal(v, tt.want), "%s: got %#v, want %#v", tt.in, v, tt.want)
	}
}

func TestReadJSONTrailingData(t *testing.T) {
	_, err := readJSON([]byte(`{"a": 1} {"b": 2}`))
	require.Error(t, err)
}

func TestReadYAMLKeyOrder(t *testing.T) {
	in := "zebra: 1\napple:\n  m: true\n  a: ~\nmango:\n  - 1\n  - 2.5\n  - x\n"
	v, err := readYAML([]byte(in))
	require.NoError(t, err)

	o, ok := v.(*toon.Object)
	require.True(t, ok, "got %T", v)
	require.Equal(t, []string{"zebra", "apple", "mango"}, o.Keys())

	inner, _ := o.Get("apple")
	require.Equal(t, []string{"m", "a"}, inner.(*toon.Object).Keys())

	list, _ := o.Get("mango")
	require.True(t, toon.Equal(list, []interface{}{int64(1), 2.5, "x"}))
}

func TestReadYAMLTimestampStaysString(t *testing.T) {
	v, err := readYAML([]byte("when: 2025-02-07T14:30:45Z\n"))
	require.NoError(t, err)
	o := v.(*toon.Object)
	when, _ := o.Get("when")
	require.Equal(t, "2025-02-07T14:30:45Z", when)

	// And the encoder quotes it, since it contains colons.
	text, err := toon.EncodeString(v, nil)
	require.NoError(t, err)
	require.Equal(t, `when: "2025-02-07T14:30:45Z"`, text)
}

func TestReadYAMLEmpty(t *testing.T) {
	v, err := readYAML(nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestDecodeInputTOON(t *testing.T) {
	v, err := decodeInput("toon", []byte("[3]: 1,2,3"), false)
	require.NoError(t, err)
	require.True(t, toon.Equal(v, []interface{}{int64(1), int64(2), int64(3)}))

	_, err = decodeInput("toon", []byte("[3]: 1,2"), false)
	require.Error(t, err)
	v, err = decodeInput("toon", []byte("[3]: 1,2"), true)
	require.NoError(t, err)
	require.True(t, toon.Equal(v, []interface{}{int64(1), int64(2)}))
}

func TestDetectFormat(t *testing.T) {
	for _, tt := range []struct {
		path string
		want string
	}{
		{"data.json", "json"},
		{"data.yaml", "yaml"},
		{"data.YML", "yaml"},
		{"data.toon", "toon"},
		{"<STDIN>", "toon"},
	} {
		require.Equal(t, tt.want, detectFormat(tt.path), tt.path)
	}
}

// A JSON document converted to TOON and back compares equal, key order
// included.
func TestJSONToTOONConversion(t *testing.T) {
	in := `{"users": [{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}], "total": 2}`
	v, err := readJSON([]byte(in))
	require.NoError(t, err)

	text, err := toon.EncodeString(v, nil)
	require.NoError(t, err)
	require.Equal(t, "users[2]{id,name}:\n  1,Alice\n  2,Bob\ntotal: 2", text)

	back, err := toon.DecodeString(text, nil)
	require.NoError(t, err)
	require.True(t, toon.Equal(back, v))
}
