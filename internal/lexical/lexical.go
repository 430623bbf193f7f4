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

// Package lexical removes string literal contents and trailing comments from GDScript
// fragments so that substring searches do not match inside them.
//
// The scanner knows nothing about GDScript beyond quotes, backslash escapes and the
// '#' line comment marker. Multi-line strings are not supported.
package lexical

import "strings"

const commentMarker = '#'

// StripComment returns s cut at the first '#' that is not inside a single- or
// double-quoted string.
//
// Single and double quote states are tracked independently, so a quote of the other kind
// inside a string does not end it. Inside a string, a backslash escapes the following
// character and never toggles quote state.
func StripComment(s string) string {
	var inSingle, inDouble bool

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && (inSingle || inDouble) && i+1 < len(s):
			i++ // keep the escaped character

		case c == commentMarker && !inSingle && !inDouble:
			return s[:i]

		case c == '"' && !inSingle:
			inDouble = !inDouble

		case c == '\'' && !inDouble:
			inSingle = !inSingle
		}
	}

	return s
}

// BlankStrings replaces every complete quoted string literal in s, delimiters included,
// with spaces. The result has the same byte length as s.
//
// A quote without a matching closing quote is left unchanged and scanning resumes at the
// next character.
func BlankStrings(s string) string {
	var b []byte // allocated on the first literal

	for i := 0; i < len(s); i++ {
		q := s[i]
		if q != '"' && q != '\'' {
			continue
		}

		end := closingQuote(s, i)
		if end < 0 {
			continue
		}

		if b == nil {
			b = []byte(s)
		}

		for j := i; j <= end; j++ {
			b[j] = ' '
		}

		i = end
	}

	if b == nil {
		return s
	}

	return string(b)
}

// closingQuote returns the index of the quote closing the literal opened at start, or -1.
func closingQuote(s string, start int) int {
	q := s[start]

	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return -1
			}
			i++

		case q:
			return i
		}
	}

	return -1
}

// ScanText prepares a right-hand side expression for token search: the text is trimmed,
// the trailing comment removed and string literals blanked.
func ScanText(s string) string {
	return BlankStrings(StripComment(strings.TrimSpace(s)))
}

// Comment returns the trailing comment of s without the marker, and whether there is one.
func Comment(s string) (string, bool) {
	code := StripComment(s)
	if len(code) == len(s) {
		return "", false
	}

	return s[len(code)+1:], true
}
