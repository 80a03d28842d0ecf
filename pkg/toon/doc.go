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

// Package toon encodes and decodes TOON (Tabular Object-Oriented Notation)
// version 1.3, a compact indentation-based text format for the same value
// trees a JSON decoder produces.
//
// A document is built from key/value lines and arrays with counted headers:
//
//	name: Alice
//	tags[3]: admin,ops,dev
//	servers[2]{host,port}:
//	  alpha,8080
//	  beta,8443
//
// Arrays take one of three forms.  Arrays of primitives are written inline
// on the header line.  Arrays of uniform objects with primitive fields are
// written tabular: the header carries the field list and each row supplies
// one delimited cell per field.  Everything else is written expanded, one
// "- " item per line.
//
// The simplest use is a pair of calls:
//
//	text, err := toon.EncodeString(v, nil)
//	v, err := toon.DecodeString(text, nil)
//
// Decoded objects are *toon.Object values, which preserve key insertion
// order; arrays are []interface{}, numbers int64 or float64.  The encoder
// accepts the same types (plus ordinary Go maps, emitted in sorted key
// order) and is configured with Options.  The decoder is strict by default:
// declared counts, tabular widths, blank-line placement, and indentation
// geometry are all enforced, and DecodeOptions{Lenient: true} relaxes
// exactly that set.  Every encoding or decoding diagnostic is a *toon.Error
// carrying a kind; decoding diagnostics also carry a 1-based source
// position.
//
// Both directions are purely functional: no state survives a call, and the
// two functions may be used from any number of goroutines concurrently.
package toon
