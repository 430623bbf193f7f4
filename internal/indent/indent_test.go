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

package indent_test

import (
	"testing"

	"fillmore-labs.com/inferguard/internal/source"

	. "fillmore-labs.com/inferguard/internal/indent"
)

func TestRewriteLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		line  string
		want  string
		ok    bool
	}{
		{"FourSpaces", 4, "    pass", "\tpass", true},
		{"Remainder", 4, "      x = 1", "\t  x = 1", true},
		{"TwoLevels", 4, "        return", "\t\treturn", true},
		{"TooFew", 4, "   x", "", false},
		{"Tabs", 4, "\tx", "", false},
		{"TabThenSpaces", 4, "\t    x", "", false},
		{"BlankLine", 4, "        ", "\t\t", true},
		{"WidthTwo", 2, "     x", "\t\t x", true},
		{"Empty", 4, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := New(tt.width)
			if err != nil {
				t.Fatalf("Can't create normalizer: %v", err)
			}

			got, ok := n.RewriteLine(tt.line)
			if got != tt.want || ok != tt.ok {
				t.Errorf("RewriteLine(%q) = %q, %v, want %q, %v", tt.line, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	if _, err := New(0); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	n, err := New(4)
	if err != nil {
		t.Fatalf("Can't create normalizer: %v", err)
	}

	f := source.New("a.gd", []byte("func f():\r\n    pass\r\n\treturn\n"))

	res := source.Scan(t.Context(), f, n)
	if got, want := string(res.Output()), "func f():\r\n\tpass\r\n\treturn\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	cr := source.New("c.gd", []byte("func f():\r    pass\r"))
	if got, want := string(source.Scan(t.Context(), cr, n).Output()), "func f():\r\tpass\r"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if res := source.Scan(t.Context(), source.New("b.gd", []byte("\tpass\n")), n); !res.Filtered {
		t.Error("File without leading spaces not filtered")
	}
}
