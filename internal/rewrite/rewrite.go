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

// Package rewrite replaces the inferred-assignment operator of a matched declaration.
package rewrite

import (
	"strings"

	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/decl"
)

const (
	assign       = " = "
	dynamicInfix = ": " + config.DynamicType + assign
)

// Line returns the rewritten line body for m, without line terminator.
//
// Indentation, modifiers, the var keyword, the left-hand side and the right-hand side are
// copied verbatim; only the operator span between LHS and RHS changes. A typed left-hand
// side, or any left-hand side with an annotation colon, receives a plain assignment.
func Line(m decl.Match, mode Mode, typed bool) string {
	infix := assign
	if mode == ExplicitDynamic && !typed && !strings.ContainsRune(m.LHS, ':') {
		infix = dynamicInfix
	}

	return m.Indent + m.Prefix + m.Keyword + m.LHS + infix + m.RHS
}
