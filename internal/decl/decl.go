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

// Package decl recognizes single-line GDScript variable declarations using the inferred
// assignment operator, like
//
//	@onready var label := get_node("Label")
//	onready export(int) var speed := 5
//
// The matcher is a small hand-written scanner over one physical line. It does not tokenize
// the right-hand side and does not understand multi-line constructs.
package decl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// InferOperator is the inferred-assignment operator.
const InferOperator = ":="

const varKeyword = "var"

// Match is a declaration recognized by [Parse].
//
// Concatenating Indent, Prefix, Keyword, the LHS with its original trailing whitespace,
// the operator span and RHS reproduces the original line.
type Match struct {
	// Indent is the leading whitespace.
	Indent string

	// Prefix is the verbatim text of all modifiers, including the whitespace separating them
	// and the whitespace before the var keyword.
	Prefix string

	// Modifiers are the decorator and keyword tokens of Prefix in their original order.
	Modifiers []string

	// Keyword is the var keyword with its following whitespace.
	Keyword string

	// LHS is the declared name with an optional type annotation, trailing whitespace removed.
	LHS string

	// Operator is the text between LHS and RHS: whitespace, the inferred-assignment operator, whitespace.
	Operator string

	// RHS is the initializer expression up to the end of the line, not trimmed.
	RHS string
}

// TrimmedRHS returns the right-hand side without surrounding whitespace.
func (m Match) TrimmedRHS() string {
	return strings.TrimSpace(m.RHS)
}

// String reassembles the original line.
func (m Match) String() string {
	return m.Indent + m.Prefix + m.Keyword + m.LHS + m.Operator + m.RHS
}

// Parse matches a line body, without line terminator, against the declaration pattern.
func Parse(line string) (Match, bool) {
	var m Match

	pos := skipSpace(line, 0)
	m.Indent = line[:pos]

	start := pos

	for {
		if strings.HasPrefix(line[pos:], varKeyword) {
			if end := pos + len(varKeyword); end < len(line) && isSpace(line, end) {
				break
			}
		}

		end, ok := modifier(line, pos)
		if !ok {
			return Match{}, false
		}

		next := skipSpace(line, end)
		if next == end {
			return Match{}, false // modifiers must be followed by whitespace
		}

		m.Modifiers = append(m.Modifiers, line[pos:end])
		pos = next
	}

	m.Prefix = line[start:pos]

	lhsStart := skipSpace(line, pos+len(varKeyword))
	m.Keyword = line[pos:lhsStart]

	// The left-hand side cannot contain '=', so the first '=' must belong to the operator.
	eq := strings.IndexByte(line[lhsStart:], '=')
	if eq < 1 || line[lhsStart+eq-1] != ':' {
		return Match{}, false
	}

	opStart := lhsStart + eq - 1
	lhs := strings.TrimRightFunc(line[lhsStart:opStart], unicode.IsSpace)

	if lhs == "" {
		return Match{}, false
	}

	m.LHS = lhs

	rhsStart := skipSpace(line, opStart+len(InferOperator))
	if rhsStart == len(line) {
		// The right-hand side needs at least one character, whitespace is given back
		if rhsStart == opStart+len(InferOperator) {
			return Match{}, false
		}

		_, size := utf8.DecodeLastRuneInString(line)
		rhsStart -= size
	}

	m.Operator = line[lhsStart+len(lhs) : rhsStart]
	m.RHS = line[rhsStart:]

	return m, true
}

// modifier scans a decorator or legacy keyword starting at pos and returns its end.
func modifier(line string, pos int) (int, bool) {
	if pos < len(line) && line[pos] == '@' {
		return decorator(line, pos)
	}

	end := pos
	for end < len(line) && isWordByte(line[end]) {
		end++
	}

	switch word := line[pos:end]; word {
	case "static", "onready", "remote", "remotesync", "puppet", "puppetmaster", "master", "sync":
		return end, true

	case "export":
		if end < len(line) && line[end] == '(' {
			closing := strings.IndexByte(line[end:], ')')
			if closing < 0 {
				return 0, false
			}

			end += closing + 1
		}

		return end, true

	default:
		return 0, false
	}
}

// decorator scans an '@' annotation. Parenthesized arguments may contain whitespace as long
// as the parentheses are balanced.
func decorator(line string, pos int) (int, bool) {
	end, depth := pos+1, 0

	for end < len(line) {
		c := line[end]

		switch {
		case c == '(':
			depth++

		case c == ')' && depth > 0:
			depth--

		case depth == 0 && (c == ' ' || c == '\t'):
			return end, end > pos+1

		case depth > 0 && (c == '"' || c == '\''):
			if closing := strings.IndexByte(line[end+1:], c); closing >= 0 {
				end += closing + 1
			}
		}

		end++
	}

	return end, false // a decorator must be followed by the declaration
}

func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}

		pos += size
	}

	return pos
}

func isSpace(s string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(s[pos:])

	return unicode.IsSpace(r)
}

func isWordByte(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
