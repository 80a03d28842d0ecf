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

// This file implements the encoder: a depth-first walk that consults the
// shape analyzer for every array and the scalar codec for every leaf,
// producing physical lines that the driver joins with single newlines.

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// normalizeTree maps an arbitrary encodable Go value onto the canonical
// value domain: nil, bool, int64, float64, string, []interface{}, *Object.
// Go maps with string keys are accepted and ordered by sorted key, since
// they carry no insertion order of their own.  Negative-zero floats are
// already canonical here ([formatFloat] collapses them on emission).
func normalizeTree(v interface{}) (interface{}, *Error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, int64, float64, string:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case uint:
		return normalizeUint(uint64(t)), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return normalizeUint(t), nil
	case float32:
		return float64(t), nil
	case []interface{}:
		arr := make([]interface{}, len(t))
		for i, el := range t {
			nv, err := normalizeTree(el)
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case *Object:
		obj := NewObject()
		for _, k := range t.keys {
			nv, err := normalizeTree(t.values[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, nv)
		}
		return obj, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			nv, err := normalizeTree(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, nv)
		}
		return obj, nil
	}

	// Other slice and string-keyed map types go through reflection.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := make([]interface{}, rv.Len())
		for i := range arr {
			nv, err := normalizeTree(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := make([]string, 0, rv.Len())
			for _, k := range rv.MapKeys() {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			obj := NewObject()
			for _, k := range keys {
				nv, err := normalizeTree(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
				if err != nil {
					return nil, err
				}
				obj.Set(k, nv)
			}
			return obj, nil
		}
	}
	return nil, errorf(ErrBadConfig, 0, 0, "cannot encode value of type %T", v)
}

func normalizeUint(u uint64) interface{} {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

// scalarText renders a normalized primitive.  The active delimiter
// participates in the quoting decision for strings.
func scalarText(v interface{}, delim byte) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int64:
		return formatInt(t)
	case float64:
		return formatFloat(t)
	case string:
		return encodeString(t, delim)
	}
	// normalizeTree leaves no other primitive behind.
	return ""
}

type encoder struct {
	lines []string
	unit  int
	delim byte
}

// encodeToString renders a normalized-or-not value tree as a complete
// document with no trailing newline.
func encodeToString(v interface{}, opts *Options) (string, *Error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	nv, err := normalizeTree(v)
	if err != nil {
		return "", err
	}
	e := &encoder{unit: opts.indent(), delim: opts.delimiter()}
	switch t := nv.(type) {
	case *Object:
		if t.Len() == 0 {
			return "", nil
		}
		e.encodeObject(t, 0)
	case []interface{}:
		e.encodeArray("", t, 0)
	default:
		return scalarText(t, e.delim), nil
	}
	return strings.Join(e.lines, "\n"), nil
}

func (e *encoder) emit(col int, s string) {
	e.lines = append(e.lines, strings.Repeat(" ", col)+s)
}

func (e *encoder) encodeObject(o *Object, col int) {
	o.Range(func(k string, v interface{}) bool {
		e.encodeField(k, v, col)
		return true
	})
}

// encodeField emits one object field at column col: inline for primitives,
// a header line plus indented body for containers.
func (e *encoder) encodeField(k string, v interface{}, col int) {
	key := encodeKey(k)
	switch t := v.(type) {
	case *Object:
		e.emit(col, key+":")
		if t.Len() > 0 {
			e.encodeObject(t, col+e.unit)
		}
	case []interface{}:
		e.encodeArray(key, t, col)
	default:
		e.emit(col, key+": "+scalarText(t, e.delim))
	}
}

// head builds the [N] header, marking the delimiter whenever it is not the
// comma default, matching what the decoder infers.
func (e *encoder) head(prefix string, n int) string {
	if e.delim != DefaultDelimiter {
		return prefix + "[" + strconv.Itoa(n) + string(e.delim) + "]"
	}
	return prefix + "[" + strconv.Itoa(n) + "]"
}

// encodeArray emits an array at column col.  prefix is the already-encoded
// key for arrays held by an object field, empty at the root and for array
// items.
func (e *encoder) encodeArray(prefix string, arr []interface{}, col int) {
	form, fields := analyzeArray(arr)
	head := e.head(prefix, len(arr))
	switch form {
	case formEmpty:
		e.emit(col, head+":")
	case formInline:
		cells := make([]string, len(arr))
		for i, el := range arr {
			cells[i] = scalarText(el, e.delim)
		}
		e.emit(col, head+": "+strings.Join(cells, string(e.delim)))
	case formTabular:
		fkeys := make([]string, len(fields))
		for i, f := range fields {
			fkeys[i] = encodeKey(f)
		}
		e.emit(col, head+"{"+strings.Join(fkeys, string(e.delim))+"}:")
		for _, el := range arr {
			row := el.(*Object)
			cells := make([]string, len(fields))
			for i, f := range fields {
				v, _ := row.Get(f)
				cells[i] = scalarText(v, e.delim)
			}
			e.emit(col+e.unit, strings.Join(cells, string(e.delim)))
		}
	case formExpanded:
		e.emit(col, head+":")
		for _, el := range arr {
			e.encodeItem(el, col+e.unit)
		}
	}
}

// singleLine reports whether v encodes as exactly one physical line and may
// therefore share an item's hyphen line without stealing the continuation
// indent from the remaining fields.
func singleLine(v interface{}) bool {
	if isPrimitive(v) {
		return true
	}
	if arr, ok := v.([]interface{}); ok {
		form, _ := analyzeArray(arr)
		return form == formEmpty || form == formInline
	}
	return false
}

// encodeItem emits one element of an expanded array at column col.
func (e *encoder) encodeItem(v interface{}, col int) {
	switch t := v.(type) {
	case *Object:
		if t.Len() == 0 {
			e.emit(col, "-")
			return
		}
		keys := t.Keys()
		first, _ := t.Get(keys[0])
		rest := keys[1:]
		if singleLine(first) {
			mark := len(e.lines)
			e.encodeField(keys[0], first, col)
			e.lines[mark] = e.hyphenate(e.lines[mark], col)
		} else {
			e.emit(col, "-")
			rest = keys
		}
		for _, k := range rest {
			fv, _ := t.Get(k)
			e.encodeField(k, fv, col+e.unit)
		}
	case []interface{}:
		mark := len(e.lines)
		e.encodeArray("", t, col)
		e.lines[mark] = e.hyphenate(e.lines[mark], col)
	default:
		e.emit(col, "- "+scalarText(t, e.delim))
	}
}

// hyphenate turns a container's first line into its item's hyphen line.
func (e *encoder) hyphenate(ln string, col int) string {
	return strings.Repeat(" ", col) + "- " + ln[col:]
}
