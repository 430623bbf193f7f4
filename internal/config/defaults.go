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

package config

import "slices"

const (
	// Extension is the file name extension of GDScript sources.
	Extension = ".gd"

	// DynamicType is the name of the untyped GDScript type used in explicit annotations.
	DynamicType = "Variant"

	// BackupSuffix is appended to a file name to form its backup.
	BackupSuffix = ".bak"

	// SettingsFile is the name of the optional settings file in the scanned root.
	SettingsFile = ".inferguard.yaml"

	// TabWidth is the default number of spaces replaced by one tab during indentation normalization.
	TabWidth = 4
)

// defaultTokens are substrings of right-hand sides that usually produce a Variant.
// Mathematical built-ins are deliberately absent.
var defaultTokens = [...]string{
	".get(", ".get_", ".call(", ".call_deferred(", ".duplicate(", ".instantiate(",
	"get_node(", ".get_node(", "get_node_or_null(", "get_parent(",
	"get_tree(", ".get_tree(", "get_viewport(", "get_world_2d(",
	"create_timer(", ".create_timer(", "create_tween(", "yield(",
	"load(", "preload(", "ResourceLoader.", "OS.", "Input.", "ProjectSettings.",
}

// defaultExcludes are path substrings of metadata, vendored and generated directories.
var defaultExcludes = [...]string{"/.git/", "/.godot/", "/addons/", "/vendor/", "/build/"}

// DefaultTokens returns a fresh copy of the built-in suspicious substrings.
func DefaultTokens() []string {
	return slices.Clone(defaultTokens[:])
}

// DefaultExcludes returns a fresh copy of the built-in path excludes.
func DefaultExcludes() []string {
	return slices.Clone(defaultExcludes[:])
}

// Merge appends the non-empty entries of extra to base, skipping duplicates.
// base is not modified.
func Merge(base []string, extra ...string) []string {
	merged := slices.Clip(base)

	for _, s := range extra {
		if s == "" || slices.Contains(merged, s) {
			continue
		}

		merged = append(merged, s)
	}

	return merged
}
