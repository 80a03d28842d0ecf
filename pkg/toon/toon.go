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

package toon

import (
	"io"
)

// EncodeString renders v as a TOON document.  A nil opts selects the
// defaults (two-space indent, comma delimiter).  The returned document has
// no trailing newline; an empty object renders as the empty string.
func EncodeString(v interface{}, opts *Options) (string, error) {
	s, err := encodeToString(v, opts)
	if err != nil {
		return "", err
	}
	return s, nil
}

// Encode writes exactly what EncodeString would return to w.
func Encode(w io.Writer, v interface{}, opts *Options) error {
	s, err := encodeToString(v, opts)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(w, s)
	return werr
}

// DecodeString rebuilds the value tree for a TOON document.  A nil opts
// selects strict mode.  The empty document decodes to nil.
func DecodeString(text string, opts *DecodeOptions) (interface{}, error) {
	v, err := parseDocument(text, opts)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode reads r to EOF and delegates to DecodeString.
func Decode(r io.Reader, opts *DecodeOptions) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeString(string(data), opts)
}
