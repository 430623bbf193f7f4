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

package decl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Typed reports whether the left-hand side ends with an explicit type annotation:
// an identifier, a colon, a dotted type name and an optional "[]" suffix.
//
//	speed: float
//	tex: Texture2D
//	shape: Physics.Shape[]
//
// Generic forms like "Array[int]" are not recognized as typed.
func Typed(lhs string) bool {
	s := strings.TrimRightFunc(lhs, unicode.IsSpace)
	s = strings.TrimSuffix(s, "[]")

	// dotted type name
	typeStart := afterLast(s, func(r rune) bool { return !isWordRune(r) && r != '.' })
	if typeStart == len(s) {
		return false
	}

	s = strings.TrimRightFunc(s[:typeStart], unicode.IsSpace)
	if !strings.HasSuffix(s, ":") {
		return false
	}

	s = strings.TrimRightFunc(s[:len(s)-1], unicode.IsSpace)

	// identifier, starting at a word boundary
	nameStart := afterLast(s, func(r rune) bool { return !isWordRune(r) })
	if nameStart == len(s) {
		return false
	}

	first := s[nameStart]

	return first == '_' || 'a' <= first && first <= 'z' || 'A' <= first && first <= 'Z'
}

// afterLast returns the byte index following the last rune in s satisfying f, or 0.
func afterLast(s string, f func(rune) bool) int {
	i := strings.LastIndexFunc(s, f)
	if i < 0 {
		return 0
	}

	_, size := utf8.DecodeRuneInString(s[i:])

	return i + size
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
