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
	"encoding/json"
	"testing"
)

func TestObjectOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", 1)
	o.Set("a", 2)
	o.Set("m", 3)
	o.Set("z", 4) // reset must keep the original position

	want := []string{"z", "a", "m"}
	got := o.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys: got %v, want %v", got, want)
		}
	}
	if v, ok := o.Get("z"); !ok || v != 4 {
		t.Errorf("Get(z): got %v, %v", v, ok)
	}
	if o.Len() != 3 {
		t.Errorf("Len: got %d, want 3", o.Len())
	}

	var seen []string
	o.Range(func(k string, v interface{}) bool {
		seen = append(seen, k)
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != "z" || seen[1] != "a" {
		t.Errorf("Range: visited %v", seen)
	}
}

func TestValueEqual(t *testing.T) {
	for _, tt := range []struct {
		line int
		a, b interface{}
		want bool
	}{
		{line(), nil, nil, true},
		{line(), int64(1), int64(1), true},
		{line(), int64(1), float64(1), false},
		{line(), "a", "a", true},
		{line(), arr(int64(1)), arr(int64(1)), true},
		{line(), arr(int64(1)), arr(int64(2)), false},
		{line(), obj("a", int64(1)), obj("a", int64(1)), true},
		{line(), obj("a", int64(1), "b", int64(2)), obj("b", int64(2), "a", int64(1)), false},
		{line(), obj("a", arr(obj("x", "y"))), obj("a", arr(obj("x", "y"))), true},
	} {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%d: Equal(%#v, %#v): got %v, want %v", tt.line, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	o := obj("z", int64(1), "a", obj("b", "x"), "list", arr(int64(1), "two"))
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":{"b":"x"},"list":[1,"two"]}`
	if string(data) != want {
		t.Errorf("MarshalJSON: got %s, want %s", data, want)
	}
}
