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

// Program gotoon reads a TOON, JSON, or YAML document and re-emits it in a
// chosen output format.
//
// Usage: gotoon [--from FORMAT] [--format FORMAT] [--indent N]
//
//	[--delimiter D] [--lenient] [--debug] [FILE]
//
// If FILE is missing, standard input is read.  The input format defaults to
// the file extension (.toon, .json, .yaml/.yml) and to TOON for standard
// input; --from overrides it.
//
// FORMAT, which defaults to "toon", specifies the format of output to
// produce.  Use "gotoon --help" for a list of available formats.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pborman/getopt"
	"github.com/sirupsen/logrus"

	"github.com/toonlab/gotoon/pkg/toon"
)

// Each output format registers a formatter.  The function f is called once
// with the decoded value tree.
type formatter struct {
	name string
	f    func(io.Writer, interface{}) error
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

// encOpts is populated from the command line and consulted by the toon
// formatter.
var encOpts toon.Options

// exitIfError writes errs to standard error and exits with an exit status
// of 1.  If errs is empty then exitIfError does nothing and simply returns.
func exitIfError(errs []error) {
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		stop(1)
	}
}

var stop = os.Exit

// delimiters names the accepted --delimiter spellings.
var delimiters = map[string]rune{
	"comma": ',',
	",":     ',',
	"tab":   '\t',
	"\t":    '\t',
	"pipe":  '|',
	"|":     '|',
}

func main() {
	var format string
	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	var (
		from      string
		indentN   int
		delimiter string
		lenient   bool
		debug     bool
		help      bool
	)
	getopt.StringVarLong(&from, "from", 0, "input format: toon, json, or yaml", "FORMAT")
	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.IntVarLong(&indentN, "indent", 0, "spaces per nesting level in TOON output (at least 2)", "N")
	getopt.StringVarLong(&delimiter, "delimiter", 0, "TOON delimiter: comma, tab, or pipe", "D")
	getopt.BoolVarLong(&lenient, "lenient", 0, "tolerate count and indentation deviations when reading TOON")
	getopt.BoolVarLong(&debug, "debug", 0, "enable debug logging")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")
	getopt.Parse()

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, `
FILE may be a .toon, .json, or .yaml document.

Formats:
`)
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
		}
		stop(0)
	}

	logrus.SetOutput(os.Stderr)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	encOpts.Indent = indentN
	if delimiter != "" {
		d, ok := delimiters[delimiter]
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: invalid delimiter.  Choices are comma, tab, pipe\n", delimiter)
			stop(1)
		}
		encOpts.Delimiter = d
	}

	if format == "" {
		format = "toon"
	}
	if _, ok := formatters[format]; !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	var (
		data []byte
		path string
		err  error
	)
	switch args := getopt.Args(); len(args) {
	case 0:
		path = "<STDIN>"
		data, err = ioutil.ReadAll(os.Stdin)
	case 1:
		path = args[0]
		data, err = ioutil.ReadFile(path)
	default:
		fmt.Fprintln(os.Stderr, "too many arguments")
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}
	if err != nil {
		exitIfError([]error{err})
	}

	inFormat := from
	if inFormat == "" || inFormat == "auto" {
		inFormat = detectFormat(path)
	}
	logrus.WithFields(logrus.Fields{
		"path":  path,
		"from":  inFormat,
		"bytes": len(data),
	}).Debug("read input")

	v, err := decodeInput(inFormat, data, lenient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		stop(1)
	}
	logrus.WithField("format", format).Debug("decoded input, formatting")

	if err := formatters[format].f(os.Stdout, v); err != nil {
		exitIfError([]error{err})
	}
}

// detectFormat picks the input format from a file extension, defaulting to
// TOON.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toon"
	}
}
