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
	"fmt"
	"io"

	"github.com/toonlab/gotoon/pkg/indent"
	"github.com/toonlab/gotoon/pkg/toon"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the decoded value tree with type annotations",
	})
}

func doTree(w io.Writer, v interface{}) error {
	writeTree(w, v)
	return nil
}

// writeTree writes v, formatted, and all of its children, to w.
func writeTree(w io.Writer, v interface{}) {
	switch t := v.(type) {
	case *toon.Object:
		fmt.Fprintf(w, "object(%d) {\n", t.Len())
		iw := indent.NewWriter(w, "  ")
		t.Range(func(k string, fv interface{}) bool {
			fmt.Fprintf(iw, "%s = ", k)
			writeTree(iw, fv)
			return true
		})
		fmt.Fprintln(w, "}")
	case []interface{}:
		fmt.Fprintf(w, "array(%d) {\n", len(t))
		iw := indent.NewWriter(w, "  ")
		for _, el := range t {
			writeTree(iw, el)
		}
		fmt.Fprintln(w, "}")
	case string:
		fmt.Fprintf(w, "string %q\n", t)
	case int64:
		fmt.Fprintf(w, "int %d\n", t)
	case float64:
		fmt.Fprintf(w, "float %v\n", t)
	case bool:
		fmt.Fprintf(w, "bool %v\n", t)
	case nil:
		fmt.Fprintln(w, "null")
	default:
		fmt.Fprintf(w, "%T %v\n", t, t)
	}
}
