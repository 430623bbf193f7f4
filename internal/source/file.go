// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package source reads GDScript files as raw bytes, splits them into line records and
// reassembles them after rewriting single lines.
//
// Lines that are not rewritten are reproduced from their original bytes, so invalid UTF-8,
// trailing whitespace and mixed line endings survive unchanged.
package source

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// BOM is the UTF-8 encoded byte order mark.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Line is one physical line of a file.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Body is the content without terminator.
	Body []byte

	// EOL is the line terminator: empty, "\n", "\r\n" or a lone "\r".
	EOL []byte
}

// Text returns the body as a string. Invalid UTF-8 sequences are replaced by U+FFFD.
func (l Line) Text() string {
	return decode(l.Body)
}

// File holds the content of one source file.
type File struct {
	path    string
	content []byte // without byte order mark
	bom     bool
}

// Read reads the file at path.
func Read(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return New(path, raw), nil
}

// New creates a [File] from raw bytes. A leading byte order mark is stripped and
// remembered.
func New(path string, raw []byte) *File {
	content, bom := bytes.CutPrefix(raw, BOM)

	return &File{path: path, content: content, bom: bom}
}

// Path returns the file name.
func (f *File) Path() string {
	return f.path
}

// HasBOM reports whether the file started with a byte order mark.
func (f *File) HasBOM() bool {
	return f.bom
}

// Content returns the bytes after the byte order mark.
func (f *File) Content() []byte {
	return f.content
}

// Raw returns the original file bytes, including the byte order mark.
func (f *File) Raw() []byte {
	if !f.bom {
		return f.content
	}

	raw := make([]byte, 0, len(BOM)+len(f.content))
	raw = append(raw, BOM...)

	return append(raw, f.content...)
}

// Lines splits the content into line records, preserving terminators.
// A final line without terminator is included; an empty file has no lines.
func (f *File) Lines() []Line {
	var lines []Line

	for i, rest := 1, f.content; len(rest) > 0; i++ {
		raw := rest[:lineEnd(rest)]
		rest = rest[len(raw):]

		lines = append(lines, splitEOL(i, raw))
	}

	return lines
}

// lineEnd returns the length of the first line of b including its terminator.
func lineEnd(b []byte) int {
	i := bytes.IndexAny(b, "\r\n")
	switch {
	case i < 0:
		return len(b)
	case b[i] == '\r' && i+1 < len(b) && b[i+1] == '\n':
		return i + 2
	default:
		return i + 1
	}
}

func splitEOL(number int, raw []byte) Line {
	n := len(raw)

	switch {
	case bytes.HasSuffix(raw, crlf):
		return Line{Number: number, Body: raw[:n-2], EOL: raw[n-2:]}

	case bytes.HasSuffix(raw, lf), bytes.HasSuffix(raw, cr):
		return Line{Number: number, Body: raw[:n-1], EOL: raw[n-1:]}

	default:
		return Line{Number: number, Body: raw}
	}
}

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
	cr   = []byte("\r")
)

// Assemble returns the file bytes with the given lines replaced, byte order mark included.
// replacements maps line numbers to new bodies; terminators are kept.
func (f *File) Assemble(replacements map[int]string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(BOM) + len(f.content) + 16*len(replacements))

	if f.bom {
		buf.Write(BOM) // ignore error
	}

	for _, line := range f.Lines() {
		if body, ok := replacements[line.Number]; ok {
			buf.WriteString(body) // ignore error
		} else {
			buf.Write(line.Body) // ignore error
		}

		buf.Write(line.EOL) // ignore error
	}

	return buf.Bytes()
}

var replacementChar = []byte(string(utf8.RuneError))

// decode converts b to a string, substituting U+FFFD for invalid sequences.
func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(bytes.ToValidUTF8(b, replacementChar))
	}

	return string(s)
}
