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

package source

import (
	"context"
	"runtime/trace"
)

// Rewriter rewrites single lines.
type Rewriter interface {
	// Candidate reports whether content may contain lines to rewrite. It is a cheap pre-filter
	// evaluated before a file is split into lines.
	Candidate(content []byte) bool

	// RewriteLine returns the replacement for a line body without terminator, and whether
	// the line changes.
	RewriteLine(body string) (string, bool)
}

// Edit replaces the body of one line.
type Edit struct {
	// Line is the 1-based line number.
	Line int

	// Original is the line body before the rewrite.
	Original string

	// Replacement is the new line body. The terminator is not part of it.
	Replacement string
}

// Result is the outcome of scanning one file.
type Result struct {
	// File is the scanned file.
	File *File

	// Edits lists the rewritten lines in ascending order.
	Edits []Edit

	// Filtered is true when the file was skipped by the pre-filter.
	Filtered bool
}

// Hits returns the number of rewritten lines.
func (r Result) Hits() int {
	return len(r.Edits)
}

// Output returns the rewritten file content including the byte order mark, or nil when no
// line changed.
func (r Result) Output() []byte {
	if len(r.Edits) == 0 {
		return nil
	}

	replacements := make(map[int]string, len(r.Edits))
	for _, e := range r.Edits {
		replacements[e.Line] = e.Replacement
	}

	return r.File.Assemble(replacements)
}

// Scan applies rw to every line of f.
func Scan(ctx context.Context, f *File, rw Rewriter) Result {
	if !rw.Candidate(f.Content()) {
		return Result{File: f, Filtered: true}
	}

	defer trace.StartRegion(ctx, "Scan").End()

	var edits []Edit

	for _, line := range f.Lines() {
		body := line.Text()

		if replacement, ok := rw.RewriteLine(body); ok {
			edits = append(edits, Edit{Line: line.Number, Original: body, Replacement: replacement})
		}
	}

	return Result{File: f, Edits: edits}
}
