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

// Package indent converts leading spaces of GDScript lines to tabs.
package indent

import (
	"bytes"
	"errors"
	"strings"
)

// ErrWidth is returned for a tab width below one.
var ErrWidth = errors.New("tab width must be positive")

// Normalizer replaces every full run of width leading spaces with a tab. Remaining spaces
// are kept after the tabs. Lines starting with a tab are not changed.
type Normalizer struct {
	width int
}

// New creates a [Normalizer] for the given tab width.
func New(width int) (*Normalizer, error) {
	if width < 1 {
		return nil, ErrWidth
	}

	return &Normalizer{width: width}, nil
}

// Candidate reports whether any line of content starts with a space.
func (n *Normalizer) Candidate(content []byte) bool {
	return bytes.HasPrefix(content, []byte(" ")) ||
		bytes.Contains(content, []byte("\n ")) || bytes.Contains(content, []byte("\r "))
}

// RewriteLine implements the line rewriter interface.
func (n *Normalizer) RewriteLine(body string) (string, bool) {
	rest := strings.TrimLeft(body, " ")
	spaces := len(body) - len(rest)

	tabs := spaces / n.width
	if tabs == 0 {
		return "", false
	}

	return strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces%n.width) + rest, true
}
