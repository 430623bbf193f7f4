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

package lexical_test

import (
	"testing"

	. "fillmore-labs.com/inferguard/internal/lexical"
)

func TestStripComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"NoComment", `get_node("A")`, `get_node("A")`},
		{"Trailing", `get_node("A") # lookup`, `get_node("A") `},
		{"HashInDouble", `"#fff" # color`, `"#fff" `},
		{"HashInSingle", `'#' + x`, `'#' + x`},
		{"EscapedDouble", `"a\"#b" # c`, `"a\"#b" `},
		{"EscapedSingle", `'it\'s #1'#x`, `'it\'s #1'`},
		{"MixedQuotes", `"it's" # x`, `"it's" `},
		{"SingleInsideDouble", `"'#'"`, `"'#'"`},
		{"Unterminated", `"abc # def`, `"abc # def`},
		{"OnlyComment", `# all`, ``},
		{"BackslashOutside", `a \ # b`, `a \ `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripComment(tt.src); got != tt.want {
				t.Errorf("StripComment(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestBlankStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"None", `load(path)`, `load(path)`},
		{"Double", `get_node("Bar")`, `get_node(     )`},
		{"Single", `x + 'get_node('`, `x +            `},
		{"Escaped", `"a\"b" + c`, `       + c`},
		{"Two", `"a" + "b"`, `    +    `},
		{"Unterminated", `"abc`, `"abc`},
		{"UnterminatedThenClosed", `"ab 'cd'`, `"ab     `},
		{"TrailingBackslash", `"ab\`, `"ab\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BlankStrings(tt.src)
			if got != tt.want {
				t.Errorf("BlankStrings(%q) = %q, want %q", tt.src, got, tt.want)
			}

			if len(got) != len(tt.src) {
				t.Errorf("BlankStrings(%q) changed length from %d to %d", tt.src, len(tt.src), len(got))
			}
		})
	}
}

func TestScanText(t *testing.T) {
	t.Parallel()

	const src = `  "get_node(" # get_tree()  `

	if got, want := ScanText(src), "            "; got != want {
		t.Errorf("ScanText(%q) = %q, want %q", src, got, want)
	}
}

func TestComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		want    string
		present bool
	}{
		{"None", `var x := 1`, "", false},
		{"Simple", `var x := 1 # nolint:inferguard`, " nolint:inferguard", true},
		{"Quoted", `var x := "#" `, "", false},
		{"Empty", `x #`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Comment(tt.src)
			if got != tt.want || ok != tt.present {
				t.Errorf("Comment(%q) = %q, %v, want %q, %v", tt.src, got, ok, tt.want, tt.present)
			}
		})
	}
}
