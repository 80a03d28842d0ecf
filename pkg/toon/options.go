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

// Default encoder settings.
const (
	DefaultIndent    = 2
	DefaultDelimiter = ','
)

// Options configures the encoder.  The zero value (and a nil *Options)
// selects the defaults: two-space indentation and comma delimiters.
type Options struct {
	// Indent is the number of spaces per nesting level.  Zero selects
	// DefaultIndent; values below 2 are rejected with BadConfig.
	Indent int
	// Delimiter separates inline array values, tabular header fields, and
	// tabular row cells.  One of ',', '\t', or '|'.  Zero selects
	// DefaultDelimiter.
	Delimiter rune
}

// DecodeOptions configures the decoder.  The zero value (and a nil
// *DecodeOptions) selects strict mode.
type DecodeOptions struct {
	// Lenient downgrades the strict-only diagnostics: blank lines inside
	// arrays are skipped, declared counts and tabular widths yield to the
	// actual shape of the document, and indentation that is not a multiple
	// of the indent unit is rounded down to the nearest depth.  All other
	// diagnostics fire in both modes.
	Lenient bool
}

// indent returns the configured indent width with the default applied.
func (o *Options) indent() int {
	if o == nil || o.Indent == 0 {
		return DefaultIndent
	}
	return o.Indent
}

// delimiter returns the configured delimiter with the default applied.
func (o *Options) delimiter() byte {
	if o == nil || o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return byte(o.Delimiter)
}

// validate checks o before encoding starts.
func (o *Options) validate() *Error {
	if o == nil {
		return nil
	}
	if o.Indent != 0 && o.Indent < 2 {
		return errorf(ErrBadConfig, 0, 0, "indent must be >= 2, got %d", o.Indent)
	}
	switch o.Delimiter {
	case 0, ',', '\t', '|':
	default:
		return errorf(ErrBadConfig, 0, 0, "unsupported delimiter %q", o.Delimiter)
	}
	return nil
}

// lenient reports whether o selects lenient decoding.
func (o *DecodeOptions) lenient() bool {
	return o != nil && o.Lenient
}
