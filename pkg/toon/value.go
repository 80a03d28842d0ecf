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
	"bytes"
	"encoding/json"
)

// A decoded TOON document is built from exactly these Go types:
//
//	nil, bool, int64, float64, string, []interface{}, *Object
//
// The encoder accepts the same types, plus the other Go integer and float
// widths (normalized on the way in) and map[string]interface{} (emitted in
// sorted key order, since a Go map carries no insertion order).

// An Object is a string-keyed mapping that iterates in first-insertion
// order.  The decoder returns objects of this type; callers who care about
// key order must hand the encoder *Object values rather than Go maps.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: map[string]interface{}{}}
}

// Set stores v under key.  A key set for the first time is appended to the
// iteration order; resetting an existing key updates the value in place.
func (o *Object) Set(key string, v interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys in o.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys of o in first-insertion order.  The returned slice
// is a copy.
func (o *Object) Keys() []string {
	ks := make([]string, len(o.keys))
	copy(ks, o.keys)
	return ks
}

// Range calls f for each key/value pair in insertion order until f returns
// false.
func (o *Object) Range(f func(key string, v interface{}) bool) {
	for _, k := range o.keys {
		if !f(k, o.values[k]) {
			return
		}
	}
}

// Equal reports whether o and p hold equal values under the same key order.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o == p
	}
	if len(o.keys) != len(p.keys) {
		return false
	}
	for i, k := range o.keys {
		if p.keys[i] != k || !Equal(o.values[k], p.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON renders o as a JSON object preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Equal reports deep equality of two decoded values.  Integers and floats
// are distinct kinds: Equal(int64(1), float64(1)) is false.
func Equal(a, b interface{}) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		return ok && av.Equal(bv)
	}
	return false
}
