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

// Behavior represents switches of a fixer run.
type Behavior uint8

const (
	// IncludeTyped rewrites declarations that already carry an explicit type annotation.
	IncludeTyped Behavior = 1 << iota

	// Write applies the rewritten lines to the files.
	Write

	// Report lists every line that would be rewritten.
	Report

	// Backup saves the original content to a sibling file before writing.
	Backup

	// Confirm asks before each file is written.
	Confirm

	// Diff prints a unified diff for every file with changes.
	Diff
)

// DefaultBehavior returns the switches of a plain run: nothing is written or reported.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
