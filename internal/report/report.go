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

// Package report writes the results of a run: candidate lines, unified diffs, update notices
// and a summary.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fillmore-labs.com/inferguard/internal/source"
)

// Summary holds the totals of a run.
type Summary struct {
	// Files is the number of selected files.
	Files int

	// Scanned is the number of files read and split into lines.
	Scanned int

	// Hits is the number of candidate lines.
	Hits int

	// Changes is the number of lines written back.
	Changes int

	// Failed is the number of files skipped because of an error.
	Failed int
}

// Reporter writes results to an output stream and a status stream.
type Reporter struct {
	out    io.Writer
	status io.Writer
	styles styles
}

// New creates a [Reporter]. Results go to out, the summary to status.
func New(out, status io.Writer) *Reporter {
	return &Reporter{out: out, status: status, styles: newStyles(lipgloss.NewRenderer(status))}
}

// Hits writes one line per edit in the form "path:line: original".
func (r *Reporter) Hits(res source.Result) error {
	path := res.File.Path()

	for _, e := range res.Edits {
		if _, err := fmt.Fprintf(r.out, "%s:%d: %s\n", path, e.Line, e.Original); err != nil {
			return err
		}
	}

	return nil
}

// Updated writes a notice for a file that has been written.
func (r *Reporter) Updated(res source.Result) error {
	_, err := fmt.Fprintf(r.out, "Updated %s (%d changes) lines: %s\n", res.File.Path(), res.Hits(), lineList(res.Edits))

	return err
}

// Failed writes a notice for a file that could not be written.
func (r *Reporter) Failed(path string, err error) error {
	_, werr := fmt.Fprintf(r.out, "Failed to write %s: %v\n", path, err)

	return werr
}

// Diff writes a unified diff of the edits in res.
func (r *Reporter) Diff(res source.Result) error {
	output := res.Output()
	if output == nil {
		return nil
	}

	before, after := res.File.Raw(), output

	return Unified(r.out, res.File.Path(), string(before), string(after))
}

// Patterns lists suspicious tokens.
func (r *Reporter) Patterns(tokens []string) error {
	var b strings.Builder

	b.WriteString("Suspicious tokens:\n")

	for _, token := range tokens {
		b.WriteString("  ")
		b.WriteString(token)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())

	return err
}

// Summary writes the totals of a run to the status stream.
func (r *Reporter) Summary(s Summary) error {
	st := r.styles

	parts := []string{
		st.count.Render(strconv.Itoa(s.Files)) + " files",
	}

	if s.Hits == 0 {
		parts = append(parts, st.clean.Render("no candidates"))
	} else {
		parts = append(parts, st.hits.Render(strconv.Itoa(s.Hits))+" candidate lines")
	}

	if s.Changes > 0 {
		parts = append(parts, st.count.Render(strconv.Itoa(s.Changes))+" changes written")
	}

	if s.Failed > 0 {
		parts = append(parts, st.failed.Render(strconv.Itoa(s.Failed)+" failed"))
	}

	_, err := fmt.Fprintln(r.status, strings.Join(parts, ", "))

	return err
}

func lineList(edits []source.Edit) string {
	lines := make([]string, len(edits))
	for i, e := range edits {
		lines[i] = strconv.Itoa(e.Line)
	}

	return "[" + strings.Join(lines, ", ") + "]"
}
