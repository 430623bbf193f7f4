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

package fixer_test

import (
	"strings"
	"sync"
	"testing"

	. "fillmore-labs.com/inferguard/fixer"
)

func TestRewriteLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		line string
		want string // empty for no rewrite
	}{
		{
			name: "OnreadyEquals",
			opts: Options{WithMode(Equals)},
			line: `onready var foo := get_node("Bar")`,
			want: `onready var foo = get_node("Bar")`,
		},
		{
			name: "NullVariant",
			line: `var x := null`,
			want: `var x: Variant = null`,
		},
		{
			name: "TokenInString",
			line: `var name := "get_node("`,
		},
		{
			name: "TypedLiteral",
			line: `@export var speed := 5.0`,
		},
		{
			name: "TokenInComment",
			line: `var n := 3 # get_node(`,
		},
		{
			name: "EmptyCollections",
			line: "\tvar items := [ ]",
			want: "\tvar items: Variant = [ ]",
		},
		{
			name: "TypedSkipped",
			line: `var node: Node := get_node("A")`,
		},
		{
			name: "TypedIncluded",
			opts: Options{WithIncludeTyped(true)},
			line: `var node: Node := get_node("A")`,
			want: `var node: Node = get_node("A")`,
		},
		{
			name: "GenericNotTyped",
			line: `var items: Array[Node] := get_node("List").get_children()`,
			want: `var items: Array[Node] = get_node("List").get_children()`,
		},
		{
			name: "Suppressed",
			line: `var n := get_parent() # nolint:inferguard`,
		},
		{
			name: "SuppressedAll",
			line: `var n := get_parent() #nolint:all`,
		},
		{
			name: "OtherLinterNotSuppressed",
			line: `var n := get_parent() # nolint:gdlint`,
			want: `var n: Variant = get_parent() # nolint:gdlint`,
		},
		{
			name: "ExtraToken",
			opts: Options{WithExtraTokens("Engine.")},
			line: `var fps := Engine.physics_ticks_per_second`,
			want: `var fps: Variant = Engine.physics_ticks_per_second`,
		},
		{
			name: "NoExtraToken",
			line: `var fps := Engine.physics_ticks_per_second`,
		},
		{
			name: "KeepsSpacing",
			opts: Options{WithMode(Equals)},
			line: "  @onready\tvar  label   :=\tget_node(\"L\")  ",
			want: "  @onready\tvar  label = get_node(\"L\")  ",
		},
		{
			name: "NoCache",
			opts: Options{WithMemoSize(0)},
			line: `var t := create_tween()`,
			want: `var t: Variant = create_tween()`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := New(tt.opts)
			if err != nil {
				t.Fatalf("Can't create fixer: %v", err)
			}

			got, ok := f.RewriteLine(tt.line)
			if ok != (tt.want != "") {
				t.Fatalf("RewriteLine(%q) = %q, %v, want %q", tt.line, got, ok, tt.want)
			}

			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if !ok {
				return
			}

			if again, changed := f.RewriteLine(got); changed {
				t.Errorf("Rewrite not idempotent: %q became %q", got, again)
			}
		})
	}
}

func TestCandidate(t *testing.T) {
	t.Parallel()

	f, err := New()
	if err != nil {
		t.Fatalf("Can't create fixer: %v", err)
	}

	if f.Candidate([]byte("extends Node\nvar x = get_node(\"A\")\n")) {
		t.Error("File without inferred assignment is a candidate")
	}

	if !f.Candidate([]byte("extends Node\nvar x := 1\n")) {
		t.Error("File with inferred assignment is not a candidate")
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	f, err := New(WithExtraTokens("Engine.", "get_node("), WithExtraTokens("", "Time."))
	if err != nil {
		t.Fatalf("Can't create fixer: %v", err)
	}

	tokens := f.Tokens()

	if got, want := tokens[len(tokens)-2:], []string{"Engine.", "Time."}; strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Got trailing tokens %q, want %q", got, want)
	}

	count := 0
	for _, token := range tokens {
		if token == "get_node(" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("Got %d copies of get_node(, want 1", count)
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	f, err := New(WithMemoSize(2))
	if err != nil {
		t.Fatalf("Can't create fixer: %v", err)
	}

	lines := [...]string{`var a := load("a")`, `var b := 1`, `var c := null`, `var d := x.get("d")`}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 100 {
				line := lines[i%len(lines)]
				_, ok := f.RewriteLine(line)

				if want := line != `var b := 1`; ok != want {
					t.Errorf("RewriteLine(%q) = %v, want %v", line, ok, want)
				}
			}
		}()
	}

	wg.Wait()
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	if m, err := ParseMode("Equals"); err != nil || m != Equals {
		t.Errorf("ParseMode(Equals) = %v, %v", m, err)
	}

	if _, err := ParseMode("typed"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
