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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   interface{}
		opts *Options
		out  string
	}{
		// Root primitives.
		{line: line(), in: nil, out: "null"},
		{line: line(), in: true, out: "true"},
		{line: line(), in: false, out: "false"},
		{line: line(), in: int64(42), out: "42"},
		{line: line(), in: -17, out: "-17"},
		{line: line(), in: 3.14, out: "3.14"},
		{line: line(), in: "hello", out: "hello"},
		{line: line(), in: "true", out: `"true"`},
		{line: line(), in: " x", out: `" x"`},

		// Objects.
		{line: line(), in: obj(), out: ""},
		{line: line(), in: obj("name", "Alice", "age", int64(30)), out: "name: Alice\nage: 30"},
		{line: line(), in: obj("value", nil), out: "value: null"},
		{line: line(), in: obj("price", 19.99), out: "price: 19.99"},
		{line: line(), in: obj("f", 20.0), out: "f: 20.0"},
		{line: line(), in: obj("big", 1e21), out: "big: 1e+21"},
		{line: line(), in: obj("v", math.Copysign(0, -1)), out: "v: 0"},
		{line: line(), in: obj("user", obj("name", "Bob", "id", int64(123))),
			out: "user:\n  name: Bob\n  id: 123"},
		{line: line(), in: obj("app", obj("db", obj("host", "localhost", "port", int64(5432)))),
			out: "app:\n  db:\n    host: localhost\n    port: 5432"},
		{line: line(), in: obj("empty", obj()), out: "empty:"},
		{line: line(), in: obj("my key", int64(1)), out: `"my key": 1`},
		{line: line(), in: obj("timestamp", "2025-02-07T14:30:45"),
			out: `timestamp: "2025-02-07T14:30:45"`},
		{line: line(), in: obj("server", obj("host", "localhost", "ports", arr(int64(8080), int64(8443)))),
			out: "server:\n  host: localhost\n  ports[2]: 8080,8443"},

		// Arrays.
		{line: line(), in: arr(), out: "[0]:"},
		{line: line(), in: arr(int64(1), int64(2), int64(3)), out: "[3]: 1,2,3"},
		{line: line(), in: arr("admin", "user", "guest"), out: "[3]: admin,user,guest"},
		{line: line(), in: arr(int64(1), "text", true), out: "[3]: 1,text,true"},
		{line: line(), in: obj("tags", arr("a,b", "c")), out: `tags[2]: "a,b",c`},
		{line: line(), in: obj("a", arr()), out: "a[0]:"},
		{line: line(), in: arr(obj("id", int64(1), "name", "Alice"), obj("id", int64(2), "name", "Bob")),
			out: "[2]{id,name}:\n  1,Alice\n  2,Bob"},
		{line: line(), in: obj("contributors", arr(obj("name", "Alice", "commits", int64(50)), obj("name", "Bob", "commits", int64(30)))),
			out: "contributors[2]{name,commits}:\n  Alice,50\n  Bob,30"},
		{line: line(), in: arr(int64(1), "text", obj("nested", "obj")),
			out: "[3]:\n  - 1\n  - text\n  - nested: obj"},
		{line: line(), in: arr(arr(int64(1), int64(2)), arr(int64(3))),
			out: "[2]:\n  - [2]: 1,2\n  - [1]: 3"},
		{line: line(), in: arr(obj()), out: "[1]:\n  -"},
		{line: line(), in: arr(obj("a", obj("x", int64(1)), "b", int64(2))),
			out: "[1]:\n  -\n    a:\n      x: 1\n    b: 2"},
		{line: line(), in: arr(obj("tags", arr(int64(1), int64(2)), "name", "x")),
			out: "[1]:\n  - tags[2]: 1,2\n    name: x"},
		// Rows that differ in key order fall back to the expanded form.
		{line: line(), in: arr(obj("id", int64(1), "name", "A"), obj("name", "B", "id", int64(2))),
			out: "[2]:\n  - id: 1\n    name: A\n  - name: B\n    id: 2"},
		// A non-primitive leaf disqualifies the tabular form.
		{line: line(), in: arr(obj("a", int64(1)), obj("a", arr())),
			out: "[2]:\n  - a: 1\n  - a[0]:"},

		// Options: indent.
		{line: line(), in: obj("parent", obj("child", "value")), opts: &Options{Indent: 4},
			out: "parent:\n    child: value"},
		{line: line(), in: obj("l1", obj("l2", obj("l3", "value"))), opts: &Options{Indent: 3},
			out: "l1:\n   l2:\n      l3: value"},
		{line: line(), in: arr(obj("id", int64(1), "name", "Alice")), opts: &Options{Indent: 3},
			out: "[1]{id,name}:\n   1,Alice"},

		// Options: delimiter.
		{line: line(), in: obj("items", arr(int64(1), int64(2), int64(3))), opts: &Options{Delimiter: '|'},
			out: "items[3|]: 1|2|3"},
		{line: line(), in: obj("items", arr(int64(1), int64(2), int64(3))), opts: &Options{Delimiter: '\t'},
			out: "items[3\t]: 1\t2\t3"},
		{line: line(), in: obj("users", arr(obj("name", "Alice", "age", int64(30)), obj("name", "Bob", "age", int64(25)))), opts: &Options{Delimiter: '\t'},
			out: "users[2\t]{name\tage}:\n  Alice\t30\n  Bob\t25"},
		{line: line(), in: obj("users", arr(obj("name", "Alice", "age", int64(30)))), opts: &Options{Delimiter: '|'},
			out: "users[1|]{name|age}:\n  Alice|30"},
		{line: line(), in: obj("tags", arr("tag|with|pipe", "normal")), opts: &Options{Delimiter: '|'},
			out: `tags[2|]: "tag|with|pipe"|normal`},
		{line: line(), in: obj("tags", arr("a,b", "c")), opts: &Options{Delimiter: '|'},
			out: "tags[2|]: a,b|c"},

		// Go maps are emitted in sorted key order.
		{line: line(), in: map[string]interface{}{"b": int64(1), "a": int64(2)}, out: "a: 2\nb: 1"},
		{line: line(), in: map[string]interface{}{"items": []interface{}{1, 2}}, out: "items[2]: 1,2"},
	} {
		got, err := EncodeString(tt.in, tt.opts)
		if err != nil {
			t.Errorf("%d: unexpected error %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.out, got); diff != "" {
			t.Errorf("%d: EncodeString: (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestEncodeBadConfig(t *testing.T) {
	for _, tt := range []struct {
		line int
		opts *Options
	}{
		{line(), &Options{Indent: 1}},
		{line(), &Options{Indent: -2}},
		{line(), &Options{Delimiter: ';'}},
		{line(), &Options{Delimiter: ' '}},
	} {
		_, err := EncodeString(obj("key", "value"), tt.opts)
		terr, ok := err.(*Error)
		if !ok || terr.Kind != ErrBadConfig {
			t.Errorf("%d: got %v, want BadConfig", tt.line, err)
		}
	}
}

func TestEncodeUnsupportedType(t *testing.T) {
	_, err := EncodeString(obj("ch", make(chan int)), nil)
	terr, ok := err.(*Error)
	if !ok || terr.Kind != ErrBadConfig {
		t.Errorf("got %v, want BadConfig", err)
	}
}

func TestEncodeWriter(t *testing.T) {
	v := obj("name", "Alice", "tags", arr("a", "b"))
	want, err := EncodeString(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, v, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("Encode wrote %q, EncodeString returned %q", buf.String(), want)
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("Encode appended a trailing newline")
	}
}

// TestEncodeGeometry checks that every encoded line is indented by a whole
// number of indent units.
func TestEncodeGeometry(t *testing.T) {
	v := obj(
		"a", obj("b", obj("c", int64(1))),
		"rows", arr(obj("x", int64(1)), obj("x", int64(2))),
		"mixed", arr(int64(1), obj("k", "v")),
	)
	for _, unit := range []int{2, 3, 4, 8} {
		out, err := EncodeString(v, &Options{Indent: unit})
		if err != nil {
			t.Fatal(err)
		}
		for _, ln := range strings.Split(out, "\n") {
			indent := len(ln) - len(strings.TrimLeft(ln, " "))
			if indent%unit != 0 {
				t.Errorf("unit %d: line %q has indent %d", unit, ln, indent)
			}
		}
	}
}
