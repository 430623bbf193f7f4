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

package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines around a change.
const contextLines = 3

const noNewline = "\\ No newline at end of file\n"

type lineOp struct {
	kind diffmatchpatch.Operation
	text string
}

// Unified writes a unified diff between before and after of the file at path.
// Nothing is written when both are equal. Leading slashes of path are dropped in the headers.
func Unified(w io.Writer, path, before, after string) error {
	ops := lineOps(before, after)

	hunks := group(ops)
	if len(hunks) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)

	name := strings.TrimLeft(filepath.ToSlash(path), "/")
	fmt.Fprintf(bw, "--- a/%s\n+++ b/%s\n", name, name)

	for _, h := range hunks {
		writeHunk(bw, ops, h)
	}

	return bw.Flush()
}

// lineOps computes a line-level diff.
func lineOps(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var ops []lineOp

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			ops = append(ops, lineOp{kind: d.Type, text: line})
		}
	}

	return ops
}

// hunk is a half-open range of ops with the 1-based start lines in both files.
type hunk struct {
	start, end         int
	oldStart, newStart int
}

// group collects changed ops with their context into hunks, merging hunks whose context
// overlaps.
func group(ops []lineOp) []hunk {
	var (
		hunks            []hunk
		oldLine, newLine = 1, 1
	)

	oldAt := make([]int, len(ops))
	newAt := make([]int, len(ops))

	for i, op := range ops {
		oldAt[i], newAt[i] = oldLine, newLine

		switch op.kind {
		case diffmatchpatch.DiffEqual:
			oldLine++
			newLine++
		case diffmatchpatch.DiffDelete:
			oldLine++
		case diffmatchpatch.DiffInsert:
			newLine++
		}
	}

	for i, op := range ops {
		if op.kind == diffmatchpatch.DiffEqual {
			continue
		}

		start, end := max(0, i-contextLines), min(len(ops), i+1+contextLines)

		if n := len(hunks); n > 0 && start <= hunks[n-1].end {
			hunks[n-1].end = max(hunks[n-1].end, end)

			continue
		}

		hunks = append(hunks, hunk{start: start, end: end, oldStart: oldAt[start], newStart: newAt[start]})
	}

	return hunks
}

func writeHunk(w *bufio.Writer, ops []lineOp, h hunk) {
	var oldCount, newCount int

	for _, op := range ops[h.start:h.end] {
		if op.kind != diffmatchpatch.DiffInsert {
			oldCount++
		}

		if op.kind != diffmatchpatch.DiffDelete {
			newCount++
		}
	}

	fmt.Fprintf(w, "@@ -%s +%s @@\n", hunkRange(h.oldStart, oldCount), hunkRange(h.newStart, newCount))

	for _, op := range ops[h.start:h.end] {
		switch op.kind {
		case diffmatchpatch.DiffEqual:
			w.WriteByte(' ')
		case diffmatchpatch.DiffDelete:
			w.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			w.WriteByte('+')
		}

		w.WriteString(op.text)

		if !strings.HasSuffix(op.text, "\n") {
			w.WriteString("\n" + noNewline)
		}
	}
}

func hunkRange(start, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", start-1)
	case 1:
		return fmt.Sprintf("%d", start)
	default:
		return fmt.Sprintf("%d,%d", start, count)
	}
}
