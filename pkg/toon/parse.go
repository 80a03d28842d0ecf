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

// This file implements the line-oriented recursive-descent parser.  Each
// call parsing a container works at a fixed indentation depth; a line at a
// shallower depth closes the container, a line one level deeper belongs to
// it, and anything deeper matches no open container.  All diagnostics that
// lenient mode downgrades are funneled through maybeErrorf so the
// downgrade set is stated in exactly one place.

import "strings"

type parser struct {
	lines   []srcLine
	pos     int
	unit    int // indent unit; 0 until the first indented line is seen
	lenient bool
	// arrayChild holds the child depth of each open array container,
	// outermost first.  A blank line is "inside" an array when the next
	// content line is at or below the outermost entry.
	arrayChild []int
}

// parseDocument decodes a whole document.
func parseDocument(text string, opts *DecodeOptions) (interface{}, *Error) {
	lines, err := scanLines(text)
	if err != nil {
		return nil, err
	}
	p := &parser{lines: lines, lenient: opts.lenient()}
	return p.parse()
}

// maybeErrorf raises a diagnostic unless it belongs to the set that lenient
// mode downgrades.  This is the only place that set is defined.
func (p *parser) maybeErrorf(k ErrKind, line, col int, f string, v ...interface{}) *Error {
	if p.lenient {
		switch k {
		case ErrBlankInArray, ErrCountMismatch, ErrWidthMismatch, ErrBadIndent:
			return nil
		}
	}
	return errorf(k, line, col, f, v...)
}

// skipBlanks advances past blank lines.  A blank line inside an open array
// container is a strict-mode error; blanks trailing the document, or ones
// followed only by content that closes every open array, are not.
func (p *parser) skipBlanks() *Error {
	for p.pos < len(p.lines) && p.lines[p.pos].blank() {
		if len(p.arrayChild) > 0 {
			j := p.pos + 1
			for j < len(p.lines) && p.lines[j].blank() {
				j++
			}
			if j < len(p.lines) {
				d, err := p.depth(p.lines[j])
				if err != nil {
					return err
				}
				if d >= p.arrayChild[0] {
					ln := p.lines[p.pos]
					if err := p.maybeErrorf(ErrBlankInArray, ln.num, 1, "blank line inside array"); err != nil {
						return err
					}
				}
			}
		}
		p.pos++
	}
	return nil
}

// depth converts a line's indent column to a container depth.  The first
// indented line establishes the indent unit.  Indents that are not a
// multiple of the unit are rejected in strict mode and rounded down in
// lenient mode.
func (p *parser) depth(ln srcLine) (int, *Error) {
	if ln.indent == 0 {
		return 0, nil
	}
	if p.unit == 0 {
		if ln.indent < 2 {
			if err := p.maybeErrorf(ErrBadIndent, ln.num, 1, "indent unit must be at least 2 spaces"); err != nil {
				return 0, err
			}
			p.unit = 2
		} else {
			p.unit = ln.indent
		}
	}
	if ln.indent%p.unit != 0 {
		if err := p.maybeErrorf(ErrBadIndent, ln.num, 1,
			"indentation of %d spaces is not a multiple of indent size %d", ln.indent, p.unit); err != nil {
			return 0, err
		}
	}
	return ln.indent / p.unit, nil
}

// activeOf returns the delimiter in force for an array scope: the header's
// explicit delimiter when present, the inherited one otherwise.
func activeOf(h *header, inherited byte) byte {
	if h.delim != 0 {
		return h.delim
	}
	return inherited
}

// parse decodes the document root: empty input is null, a lone line with no
// key structure is a bare primitive, a leading array header opens a root
// array, and anything else is a root object.
func (p *parser) parse() (interface{}, *Error) {
	if err := p.skipBlanks(); err != nil {
		return nil, err
	}
	if p.pos >= len(p.lines) {
		return nil, nil
	}
	ln := p.lines[p.pos]
	if ln.indent != 0 {
		return nil, errorf(ErrBadIndent, ln.num, 1, "unexpected indentation at top level")
	}

	s := newLineScanner(ln)
	h, err := s.tryHeader(DefaultDelimiter)
	if err != nil {
		return nil, err
	}
	if h != nil {
		p.pos++
		s.beginTail()
		v, aerr := p.parseArray(h, s, 0, activeOf(h, DefaultDelimiter))
		if aerr != nil {
			return nil, aerr
		}
		return v, p.expectEOF()
	}

	trial := newLineScanner(ln)
	if _, ferr := trial.scanFieldLine(DefaultDelimiter); ferr != nil {
		// Not a key line: a bare primitive, but only if it stands alone.
		p.pos++
		if err := p.skipBlanks(); err != nil {
			return nil, err
		}
		if p.pos < len(p.lines) {
			return nil, ferr
		}
		return newLineScanner(ln).scanValue()
	}

	obj, oerr := p.parseObject(0, DefaultDelimiter)
	if oerr != nil {
		return nil, oerr
	}
	return obj, p.expectEOF()
}

// expectEOF requires that only blank lines remain.
func (p *parser) expectEOF() *Error {
	for p.pos < len(p.lines) && p.lines[p.pos].blank() {
		p.pos++
	}
	if p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		return errorf(ErrBadIndent, ln.num, 1, "unexpected content after document root")
	}
	return nil
}

func (p *parser) parseObject(depth int, active byte) (*Object, *Error) {
	obj := NewObject()
	if err := p.parseObjectInto(obj, depth, active); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseObjectInto reads field lines at exactly depth into obj, returning
// when a shallower line closes the object.
func (p *parser) parseObjectInto(obj *Object, depth int, active byte) *Error {
	for {
		if err := p.skipBlanks(); err != nil {
			return err
		}
		if p.pos >= len(p.lines) {
			return nil
		}
		ln := p.lines[p.pos]
		d, err := p.depth(ln)
		if err != nil {
			return err
		}
		if d < depth {
			return nil
		}
		if d > depth {
			return errorf(ErrBadIndent, ln.num, 1, "indentation does not match any open container")
		}
		fl, ferr := newLineScanner(ln).scanFieldLine(active)
		if ferr != nil {
			return ferr
		}
		p.pos++
		v, verr := p.parseFieldValue(fl, depth, active)
		if verr != nil {
			return verr
		}
		obj.Set(fl.key, v)
	}
}

// parseFieldValue resolves the value of a parsed field line whose own line
// sits at depth.
func (p *parser) parseFieldValue(fl *fieldLine, depth int, active byte) (interface{}, *Error) {
	if fl.hdr != nil {
		return p.parseArray(fl.hdr, fl.vs, depth, activeOf(fl.hdr, active))
	}
	if strings.Trim(fl.vs.rest(), " ") != "" {
		return fl.vs.scanValue()
	}
	// Empty tail: a nested object when indented children follow, an empty
	// object otherwise.  Empty strings are always quoted, so the forms
	// cannot collide.
	if err := p.skipBlanks(); err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		d, err := p.depth(ln)
		if err != nil {
			return nil, err
		}
		if d > depth+1 {
			return nil, errorf(ErrBadIndent, ln.num, 1, "indentation does not match any open container")
		}
		if d == depth+1 {
			return p.parseObject(depth+1, active)
		}
	}
	return NewObject(), nil
}

// parseArray decodes an array whose header line sits at depth.  vs is
// positioned at the header's value tail; a non-blank tail selects the
// inline form, a field block the tabular form, and anything else the
// expanded form.
func (p *parser) parseArray(h *header, vs *lineScanner, depth int, active byte) (interface{}, *Error) {
	p.arrayChild = append(p.arrayChild, depth+1)
	defer func() { p.arrayChild = p.arrayChild[:len(p.arrayChild)-1] }()

	if strings.Trim(vs.rest(), " ") != "" {
		cells, err := vs.scanCells(active)
		if err != nil {
			return nil, err
		}
		if len(cells) != h.count {
			if err := p.maybeErrorf(ErrCountMismatch, h.line, h.col,
				"expected %d values, found %d", h.count, len(cells)); err != nil {
				return nil, err
			}
		}
		return cells, nil
	}
	if h.tabular() {
		return p.parseTabular(h, depth, active)
	}
	return p.parseExpanded(h, depth, active)
}

func (p *parser) parseTabular(h *header, depth int, active byte) (interface{}, *Error) {
	seen := make(map[string]bool, len(h.fields))
	for _, f := range h.fields {
		if seen[f] {
			return nil, errorf(ErrNonUniformTabular, h.line, h.col, "duplicate field %q in tabular header", f)
		}
		seen[f] = true
	}

	rows := []interface{}{}
	for {
		if err := p.skipBlanks(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		d, err := p.depth(ln)
		if err != nil {
			return nil, err
		}
		if d <= depth {
			break
		}
		if d > depth+1 {
			return nil, errorf(ErrBadIndent, ln.num, 1, "indentation does not match any open container")
		}
		p.pos++
		cells, cerr := newLineScanner(ln).scanCells(active)
		if cerr != nil {
			return nil, cerr
		}
		if len(cells) != len(h.fields) {
			if err := p.maybeErrorf(ErrWidthMismatch, ln.num, ln.indent+1,
				"row has %d cells, header has %d fields", len(cells), len(h.fields)); err != nil {
				return nil, err
			}
		}
		row := NewObject()
		for i, f := range h.fields {
			if i < len(cells) {
				row.Set(f, cells[i])
			}
		}
		rows = append(rows, row)
	}
	if len(rows) != h.count {
		if err := p.maybeErrorf(ErrCountMismatch, h.line, h.col,
			"expected %d rows, found %d", h.count, len(rows)); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (p *parser) parseExpanded(h *header, depth int, active byte) (interface{}, *Error) {
	items := []interface{}{}
	for {
		if err := p.skipBlanks(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		d, err := p.depth(ln)
		if err != nil {
			return nil, err
		}
		if d <= depth {
			break
		}
		if d > depth+1 {
			return nil, errorf(ErrBadIndent, ln.num, 1, "indentation does not match any open container")
		}
		if ln.text != "-" && !strings.HasPrefix(ln.text, "- ") {
			break
		}
		p.pos++
		item, ierr := p.parseItem(ln, depth+1, active)
		if ierr != nil {
			return nil, ierr
		}
		items = append(items, item)
	}
	if len(items) != h.count {
		if err := p.maybeErrorf(ErrCountMismatch, h.line, h.col,
			"expected %d items, found %d", h.count, len(items)); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// parseItem decodes one expanded-form item whose hyphen line sits at depth.
// Continuation lines (remaining object fields, nested array bodies) sit one
// level deeper.
func (p *parser) parseItem(ln srcLine, depth int, active byte) (interface{}, *Error) {
	if ln.text == "-" {
		// All fields, if any, follow on continuation lines.
		return p.parseItemObjectTail(NewObject(), depth, active)
	}
	s := newLineScanner(ln)
	s.pos = 2 // past "- "
	s.skipSpaces()

	if s.peek() == '[' {
		h, err := s.tryHeader(active)
		if err != nil {
			return nil, err
		}
		if h != nil {
			s.beginTail()
			return p.parseArray(h, s, depth, activeOf(h, active))
		}
	}

	trial := *s
	fl, ferr := (&trial).scanFieldLine(active)
	if ferr != nil {
		return s.scanValue()
	}
	obj := NewObject()
	v, verr := p.parseFieldValue(fl, depth, active)
	if verr != nil {
		return nil, verr
	}
	obj.Set(fl.key, v)
	return p.parseItemObjectTail(obj, depth, active)
}

// parseItemObjectTail merges an item's continuation fields, one level below
// the hyphen line, into obj.
func (p *parser) parseItemObjectTail(obj *Object, depth int, active byte) (interface{}, *Error) {
	if err := p.skipBlanks(); err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		d, err := p.depth(p.lines[p.pos])
		if err != nil {
			return nil, err
		}
		if d == depth+1 {
			if err := p.parseObjectInto(obj, depth+1, active); err != nil {
				return nil, err
			}
		}
	}
	return obj, nil
}
