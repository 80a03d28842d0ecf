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

// Package indent prefixes lines of text.  It is used by the gotoon tool to
// render nested value trees.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns s with every line prefixed by prefix.
func String(prefix, s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			b.WriteString(prefix)
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(prefix)
		b.WriteString(s[:i+1])
		s = s[i+1:]
		if s == "" {
			return b.String()
		}
	}
}

// Bytes returns b with every line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	return []byte(String(string(prefix), string(b)))
}

// NewWriter returns a writer that copies to w, inserting prefix at the
// start of every line.  The returned count reflects bytes consumed from
// the caller, not bytes written to w.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &indenter{w: w, prefix: []byte(prefix), bol: true}
}

type indenter struct {
	w      io.Writer
	prefix []byte
	bol    bool // at beginning of a line, prefix not yet written
}

func (in *indenter) Write(buf []byte) (int, error) {
	var written int
	for len(buf) > 0 {
		if in.bol {
			if _, err := in.w.Write(in.prefix); err != nil {
				return written, err
			}
			in.bol = false
		}
		chunk := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			chunk = buf[:i+1]
		}
		n, err := in.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		if chunk[len(chunk)-1] == '\n' {
			in.bol = true
		}
		buf = buf[len(chunk):]
	}
	return written, nil
}
