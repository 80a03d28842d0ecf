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

	"github.com/toonlab/gotoon/pkg/toon"
)

func init() {
	register(&formatter{
		name: "toon",
		f:    doTOON,
		help: "display as a TOON document (--indent, --delimiter apply)",
	})
}

func doTOON(w io.Writer, v interface{}) error {
	if err := toon.Encode(w, v, &encOpts); err != nil {
		return err
	}
	// The document itself carries no trailing newline.
	_, err := fmt.Fprintln(w)
	return err
}
