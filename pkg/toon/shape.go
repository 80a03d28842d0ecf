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

// An arrayForm is one of the three serialized presentations of an array
// (plus the degenerate empty form).
type arrayForm int

const (
	formEmpty arrayForm = iota
	formInline
	formTabular
	formExpanded
)

// isPrimitive reports whether v is a leaf value.  It expects the normalized
// value domain (see normalizeTree).
func isPrimitive(v interface{}) bool {
	switch v.(type) {
	case nil, bool, int64, float64, string:
		return true
	}
	return false
}

// analyzeArray classifies a normalized array into its serialized form.  For
// the tabular form it also returns the field header: the first element's
// keys in insertion order.  The rules, first match wins:
//
//  1. no elements: empty
//  2. every element primitive: inline
//  3. every element a non-empty object, all with the first element's keys
//     in the first element's order, all values primitive: tabular
//  4. otherwise: expanded
func analyzeArray(arr []interface{}) (arrayForm, []string) {
	if len(arr) == 0 {
		return formEmpty, nil
	}
	inline := true
	for _, el := range arr {
		if !isPrimitive(el) {
			inline = false
			break
		}
	}
	if inline {
		return formInline, nil
	}
	first, ok := arr[0].(*Object)
	if !ok || first.Len() == 0 {
		return formExpanded, nil
	}
	fields := first.Keys()
	for _, el := range arr {
		row, ok := el.(*Object)
		if !ok || row.Len() != len(fields) {
			return formExpanded, nil
		}
		for i, k := range row.Keys() {
			if k != fields[i] {
				return formExpanded, nil
			}
			v, _ := row.Get(k)
			if !isPrimitive(v) {
				return formExpanded, nil
			}
		}
	}
	return formTabular, fields
}
