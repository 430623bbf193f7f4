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

package fixer

import (
	"bytes"

	"fillmore-labs.com/inferguard/internal/classify"
	"fillmore-labs.com/inferguard/internal/decl"
	"fillmore-labs.com/inferguard/internal/rewrite"
	"fillmore-labs.com/inferguard/internal/source"
)

// Mode selects how an inferred declaration is rewritten.
type Mode = rewrite.Mode

const (
	// Variant rewrites "var x := e" to "var x: Variant = e".
	Variant = rewrite.ExplicitDynamic

	// Equals rewrites "var x := e" to "var x = e".
	Equals = rewrite.Equals
)

// ParseMode returns the [Mode] named "variant" or "equals".
func ParseMode(name string) (Mode, error) { return rewrite.ParseMode(name) }

var inferOperator = []byte(decl.InferOperator)

// Fixer rewrites suspicious inferred declarations line by line.
// A Fixer is safe for concurrent use.
type Fixer struct {
	classifier   *classify.Classifier
	mode         Mode
	includeTyped bool
}

var _ source.Rewriter = (*Fixer)(nil)

// New creates a new fixer.
// It allows for programmatic configuration using [Option].
func New(opts ...Option) (*Fixer, error) {
	return makeRunOptions(opts).fixer()
}

// Candidate reports whether content contains the inferred-assignment operator at all.
func (f *Fixer) Candidate(content []byte) bool {
	return bytes.Contains(content, inferOperator)
}

// RewriteLine returns the rewritten line body and true when body is a suspicious
// declaration.
func (f *Fixer) RewriteLine(body string) (string, bool) {
	m, ok := decl.Parse(body)
	if !ok {
		return "", false
	}

	typed := decl.Typed(m.LHS)
	if typed && !f.includeTyped {
		return "", false
	}

	if !f.classifier.Suspicious(m.RHS) || source.NoLint(body) {
		return "", false
	}

	return rewrite.Line(m, f.mode, typed), true
}

// Mode returns the configured rewrite mode.
func (f *Fixer) Mode() Mode {
	return f.mode
}

// Tokens returns the effective suspicious substrings.
func (f *Fixer) Tokens() []string {
	return f.classifier.Tokens()
}
