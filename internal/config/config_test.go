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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/inferguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Write, Backup)

	if !b.Enabled(Write) || !b.Enabled(Backup) {
		t.Errorf("Expected Write and Backup to be enabled")
	}

	if b.Enabled(Report | Confirm) {
		t.Errorf("Expected Report and Confirm to be disabled")
	}

	c := b.With(Backup, false)

	if c.Enabled(Backup) {
		t.Errorf("Got Backup enabled after With(Backup, false)")
	}

	if !b.Enabled(Backup) {
		t.Errorf("With modified the original mask")
	}

	c.Set(IncludeTyped, true)

	if !c.Enabled(IncludeTyped) {
		t.Errorf("Got IncludeTyped disabled after Set")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := DefaultTokens()
	n := len(base)

	merged := Merge(base, "", "get_node(", "Engine.", "Engine.")

	if got, want := len(merged), n+1; got != want {
		t.Fatalf("Got %d tokens, want %d", got, want)
	}

	if got, want := merged[n], "Engine."; got != want {
		t.Errorf("Got last token %q, want %q", got, want)
	}

	if len(base) != n || slices.Contains(base, "Engine.") {
		t.Errorf("Merge modified the base list")
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	t.Parallel()

	tokens := DefaultTokens()
	tokens[0] = "changed"

	if DefaultTokens()[0] == "changed" {
		t.Errorf("DefaultTokens returned a shared slice")
	}

	excludes := DefaultExcludes()
	if !slices.Contains(excludes, "/.git/") {
		t.Errorf("Got excludes %q, want /.git/ among them", excludes)
	}
}
