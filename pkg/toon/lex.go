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

// This file implements the lexical layer of the decoder.  A document is
// first split into physical lines, each carrying its indent column.  Within
// a line, a lineScanner tokenizes array headers [N(d)?], field blocks
// {f1(d)f2...}, keys, the separating colon, quoted strings, and
// delimiter-separated cells.  Quoted strings are scanned with their escape
// sequences so that their contents are opaque to everything downstream.

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// A srcLine is one physical line of the source document.
type srcLine struct {
	num    int    // 1-based line number
	indent int    // number of leading spaces
	text   string // content after the indent; "" for a blank line
}

// blank reports whether the line contains only spaces.
func (ln srcLine) blank() bool { return ln.text == "" }

// scanLines splits input into physical lines.  One trailing newline before
// EOF is tolerated.  Tabs in leading indentation are rejected.
func scanLines(input string) ([]srcLine, *Error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, nil
	}
	raw := strings.Split(input, "\n")
	lines := make([]srcLine, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		indent := 0
		for indent < len(text) {
			switch text[indent] {
			case ' ':
				indent++
				continue
			case '\t':
				return nil, errorf(ErrTabInIndent, i+1, indent+1, "tab character in indentation")
			}
			break
		}
		content := text[indent:]
		if strings.TrimRight(content, " ") == "" {
			lines = append(lines, srcLine{num: i + 1})
			continue
		}
		lines = append(lines, srcLine{num: i + 1, indent: indent, text: content})
	}
	return lines, nil
}

// A header is the [N(d)?]{f1(d)f2...}? prefix that opens an array.
type header struct {
	count  int
	delim  byte     // explicit delimiter from the header, 0 if none
	fields []string // tabular field names, nil when no field block
	line   int
	col    int // column of the opening bracket
}

// tabular reports whether the header declares a field block.
func (h *header) tabular() bool { return h.fields != nil }

// A fieldLine is one parsed key line: a key, an optional array header, and
// a scanner positioned at the start of the value tail.
type fieldLine struct {
	key    string
	keyCol int
	hdr    *header      // non-nil when the key is followed by an array header
	vs     *lineScanner // positioned at the tail, one leading space stripped
}

// A lineScanner is a cursor over the content of one line.
type lineScanner struct {
	ln  srcLine
	pos int // byte offset into ln.text
}

func newLineScanner(ln srcLine) *lineScanner {
	return &lineScanner{ln: ln}
}

// col returns the current 1-based column, counted in code points and
// including the line's indent.
func (s *lineScanner) col() int {
	return s.ln.indent + utf8.RuneCountInString(s.ln.text[:s.pos]) + 1
}

// eol reports whether the cursor is at the end of the line.
func (s *lineScanner) eol() bool { return s.pos >= len(s.ln.text) }

// peek returns the byte under the cursor, or 0 at end of line.
func (s *lineScanner) peek() byte {
	if s.eol() {
		return 0
	}
	return s.ln.text[s.pos]
}

// rest returns the unconsumed remainder of the line.
func (s *lineScanner) rest() string { return s.ln.text[s.pos:] }

// skipSpaces moves the cursor past ASCII spaces.  Tabs are never skipped;
// a tab may be the active delimiter.
func (s *lineScanner) skipSpaces() {
	for !s.eol() && s.ln.text[s.pos] == ' ' {
		s.pos++
	}
}

// errorf returns a located error at the current cursor position.
func (s *lineScanner) errorf(k ErrKind, f string, v ...interface{}) *Error {
	return errorf(k, s.ln.num, s.col(), f, v...)
}

// scanQuoted scans a double-quoted string starting at the cursor, applying
// the escape table.  The cursor must be on the opening quote.
func (s *lineScanner) scanQuoted() (string, *Error) {
	startCol := s.col()
	s.pos++ // opening quote
	var b strings.Builder
	for !s.eol() {
		switch c := s.ln.text[s.pos]; c {
		case '"':
			s.pos++
			return b.String(), nil
		case '\\':
			if s.pos+1 >= len(s.ln.text) {
				return "", errorf(ErrUnterminatedString, s.ln.num, startCol, `missing closing "`)
			}
			escCol := s.col()
			switch esc := s.ln.text[s.pos+1]; esc {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", errorf(ErrInvalidEscape, s.ln.num, escCol, `invalid escape sequence: \%c`, esc)
			}
			s.pos += 2
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	return "", errorf(ErrUnterminatedString, s.ln.num, startCol, `missing closing "`)
}

// tryHeader attempts to scan an array header at the cursor, including the
// mandatory colon.  When the text is not header-shaped, the cursor is left
// untouched and (nil, nil) is returned; a malformed field block after a
// well-formed [N] is a hard error.  active is the delimiter inherited from
// the enclosing scope, used to split the field block when the header does
// not declare its own.
func (s *lineScanner) tryHeader(active byte) (*header, *Error) {
	if s.peek() != '[' {
		return nil, nil
	}
	save := s.pos
	h := &header{line: s.ln.num, col: s.col()}
	s.pos++
	start := s.pos
	for !s.eol() && s.ln.text[s.pos] >= '0' && s.ln.text[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		s.pos = save
		return nil, nil
	}
	n, err := strconv.Atoi(s.ln.text[start:s.pos])
	if err != nil {
		s.pos = save
		return nil, nil
	}
	h.count = n
	switch s.peek() {
	case ',', '\t', '|':
		h.delim = s.ln.text[s.pos]
		s.pos++
	}
	if s.peek() != ']' {
		s.pos = save
		return nil, nil
	}
	s.pos++
	delim := active
	if h.delim != 0 {
		delim = h.delim
	}
	if s.peek() == '{' {
		s.pos++
		h.fields = []string{}
		for {
			var key string
			var kerr *Error
			if s.peek() == '"' {
				key, kerr = s.scanQuoted()
				if kerr != nil {
					return nil, kerr
				}
			} else {
				end := s.pos
				for end < len(s.ln.text) && s.ln.text[end] != delim && s.ln.text[end] != '}' {
					end++
				}
				key = strings.Trim(s.ln.text[s.pos:end], " ")
				s.pos = end
			}
			h.fields = append(h.fields, key)
			switch s.peek() {
			case delim:
				s.pos++
			case '}':
				s.pos++
				goto fieldsDone
			default:
				return nil, s.errorf(ErrMissingColon, "malformed field block in array header")
			}
		}
	}
fieldsDone:
	if s.peek() != ':' {
		if h.fields == nil {
			// A bracketed run without its colon is not a header at all;
			// let the caller read it as ordinary text.
			s.pos = save
			return nil, nil
		}
		return nil, s.errorf(ErrMissingColon, "missing ':' after array header")
	}
	s.pos++
	return h, nil
}

// beginTail positions the cursor at the start of the value tail by
// stripping exactly one leading space when present.  The cursor must be
// just past a colon.
func (s *lineScanner) beginTail() {
	if s.peek() == ' ' {
		s.pos++
	}
}

// scanFieldLine parses a key line: a bare or quoted key followed by either
// an array header or a colon and value tail.
func (s *lineScanner) scanFieldLine(active byte) (*fieldLine, *Error) {
	fl := &fieldLine{keyCol: s.col()}
	if s.peek() == '"' {
		key, err := s.scanQuoted()
		if err != nil {
			return nil, err
		}
		fl.key = key
		switch s.peek() {
		case '[':
			h, err := s.tryHeader(active)
			if err != nil {
				return nil, err
			}
			if h == nil {
				return nil, s.errorf(ErrMissingColon, "missing ':' after key")
			}
			fl.hdr = h
		case ':':
			s.pos++
		default:
			return nil, s.errorf(ErrMissingColon, "missing ':' after key")
		}
		s.beginTail()
		fl.vs = s
		return fl, nil
	}

	start := s.pos
	for {
		i := strings.IndexAny(s.ln.text[s.pos:], ":[")
		if i < 0 {
			return nil, errorf(ErrMissingColon, s.ln.num, fl.keyCol, "missing ':' in line %q", s.ln.text)
		}
		s.pos += i
		if s.ln.text[s.pos] == ':' {
			fl.key = strings.TrimRight(s.ln.text[start:s.pos], " ")
			s.pos++
			s.beginTail()
			fl.vs = s
			return fl, nil
		}
		// A '[' is an array header only if it scans as one; otherwise it
		// is part of the key text.
		brk := s.pos
		h, err := s.tryHeader(active)
		if err != nil {
			return nil, err
		}
		if h != nil {
			fl.key = strings.TrimRight(s.ln.text[start:brk], " ")
			fl.hdr = h
			s.beginTail()
			fl.vs = s
			return fl, nil
		}
		s.pos++ // step over the '[' and keep looking
	}
}

// scanCells splits the remainder of the line into delimiter-separated
// cells and decodes each through the scalar codec.  Bare cells are trimmed
// of surrounding spaces; quoted cells are opaque.
func (s *lineScanner) scanCells(delim byte) ([]interface{}, *Error) {
	var cells []interface{}
	for {
		s.skipSpaces()
		if s.peek() == '"' {
			str, err := s.scanQuoted()
			if err != nil {
				return nil, err
			}
			cells = append(cells, str)
			s.skipSpaces()
			switch {
			case s.eol():
				return cells, nil
			case s.peek() == delim:
				s.pos++
			default:
				return nil, s.errorf(ErrUnterminatedString, "unexpected text after quoted value")
			}
			continue
		}
		i := strings.IndexByte(s.ln.text[s.pos:], delim)
		if i < 0 {
			raw := strings.Trim(s.rest(), " ")
			s.pos = len(s.ln.text)
			cells = append(cells, decodeBare(raw))
			return cells, nil
		}
		raw := strings.Trim(s.ln.text[s.pos:s.pos+i], " ")
		s.pos += i + 1
		cells = append(cells, decodeBare(raw))
	}
}

// scanValue decodes the remainder of the line as a single scalar.
func (s *lineScanner) scanValue() (interface{}, *Error) {
	s.skipSpaces()
	if s.peek() == '"' {
		str, err := s.scanQuoted()
		if err != nil {
			return nil, err
		}
		s.skipSpaces()
		if !s.eol() {
			return nil, s.errorf(ErrUnterminatedString, "unexpected text after quoted value")
		}
		return str, nil
	}
	raw := strings.Trim(s.rest(), " ")
	s.pos = len(s.ln.text)
	return decodeBare(raw), nil
}
