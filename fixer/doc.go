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

// Package fixer rewrites GDScript declarations that infer a Variant.
//
// # Overview
//
// In strict mode Godot reports a declaration like
//
//	@onready var label := get_node("Label")
//
// because get_node returns a Node of unknown script type and the inferred type is not
// useful. The fixer recognizes such single-line declarations lexically and replaces the
// inferred-assignment operator, leaving every other byte of the line untouched.
//
// # Example
//
// Before:
//
//	onready var timer := get_tree().create_timer(1.0)
//	var data := null
//	var speed: float := 5.0
//
// After, with the default [Variant] mode:
//
//	onready var timer: Variant = get_tree().create_timer(1.0)
//	var data: Variant = null
//	var speed: float := 5.0
//
// With [Equals] mode the first two lines become "var timer = ..." and "var data = null".
// Declarations that already carry a type are left alone unless [WithIncludeTyped] is set.
//
// # Suppression
//
// A trailing comment "# nolint:inferguard" or "# nolint:all" excludes a line.
package fixer
