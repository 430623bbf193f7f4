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

// Package testsource materializes GDScript source trees for tests.
//
// Trees are written as txtar archives, so a test can keep a whole project layout in one
// string literal:
//
//	-- player.gd --
//	onready var sprite := get_node("Sprite")
//	-- addons/plugin.gd --
//	var x := null
package testsource

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// Tree writes the files of a txtar archive below a fresh temporary directory and returns
// the directory. The archive comment is ignored.
func Tree(tb testing.TB, archive string) string {
	tb.Helper()

	root := tb.TempDir()
	Write(tb, root, txtar.Parse([]byte(archive)))

	return root
}

// Write writes the files of ar below root, creating directories as needed.
func Write(tb testing.TB, root string, ar *txtar.Archive) {
	tb.Helper()

	for _, f := range ar.Files {
		name := filepath.Join(root, filepath.FromSlash(f.Name))

		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			tb.Fatalf("Can't create directory for %s: %v", f.Name, err)
		}

		if err := os.WriteFile(name, f.Data, 0o644); err != nil {
			tb.Fatalf("Can't write %s: %v", f.Name, err)
		}
	}
}

// Read returns the content of the slash-separated file name below root.
func Read(tb testing.TB, root, name string) string {
	tb.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		tb.Fatalf("Can't read %s: %v", name, err)
	}

	return string(data)
}

// Rel returns the slash-separated paths of files relative to root.
func Rel(tb testing.TB, root string, files []string) []string {
	tb.Helper()

	rels := make([]string, 0, len(files))

	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			tb.Fatalf("Can't relativize %s: %v", f, err)
		}

		rels = append(rels, filepath.ToSlash(rel))
	}

	return rels
}
