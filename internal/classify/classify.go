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

// Package classify decides whether a right-hand side expression is likely to infer a
// Variant in GDScript.
//
// Classification is lexical: an expression is suspicious when it is a literal without a
// static type of its own, or when its text, with string literals and the trailing comment
// removed, contains one of the configured tokens.
package classify

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"fillmore-labs.com/inferguard/internal/lexical"
)

// untypedLiteral matches right-hand sides that have no static type by themselves.
var untypedLiteral = regexp.MustCompile(`^\s*(?:null|\[\s*\]|\{\s*\}|Array\s*\(\s*\)|Dictionary\s*\(\s*\))\s*$`)

// Classifier tests right-hand sides against a fixed token list.
// A Classifier is safe for concurrent use.
type Classifier struct {
	tokens []string
	memo   *lru.Cache[string, bool]
}

// New creates a [Classifier] for the given tokens. Empty tokens are ignored.
//
// When memoSize is positive, results are remembered for the last memoSize distinct
// right-hand sides.
func New(tokens []string, memoSize int) (*Classifier, error) {
	c := &Classifier{tokens: make([]string, 0, len(tokens))}

	for _, token := range tokens {
		if token != "" {
			c.tokens = append(c.tokens, token)
		}
	}

	if memoSize > 0 {
		memo, err := lru.New[string, bool](memoSize)
		if err != nil {
			return nil, err
		}

		c.memo = memo
	}

	return c, nil
}

// Tokens returns the effective token list.
func (c *Classifier) Tokens() []string {
	return c.tokens
}

// Suspicious reports whether rhs should be rewritten.
func (c *Classifier) Suspicious(rhs string) bool {
	if c.memo == nil {
		return c.classify(rhs)
	}

	if suspicious, ok := c.memo.Get(rhs); ok {
		return suspicious
	}

	suspicious := c.classify(rhs)
	c.memo.Add(rhs, suspicious)

	return suspicious
}

func (c *Classifier) classify(rhs string) bool {
	if Untyped(rhs) {
		return true
	}

	text := lexical.ScanText(rhs)

	for _, token := range c.tokens {
		if strings.Contains(text, token) {
			return true
		}
	}

	return false
}

// Untyped reports whether rhs is a literal without a static type, like null or an empty
// collection.
func Untyped(rhs string) bool {
	return untypedLiteral.MatchString(strings.TrimSpace(rhs))
}
