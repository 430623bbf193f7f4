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
	"fillmore-labs.com/inferguard/internal/classify"
	"fillmore-labs.com/inferguard/internal/config"
)

// defaultMemoSize is the number of distinct right-hand sides remembered by default.
const defaultMemoSize = 4096

// runOptions represent the configuration of a fixer.
type runOptions struct {
	// behavior holds the switches of the fixer.
	behavior config.BitMask[config.Behavior]

	// mode selects the replacement text.
	mode Mode

	// tokens are the suspicious substrings, defaults included.
	tokens []string

	// memoSize is the capacity of the classification cache.
	memoSize int
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior: config.DefaultBehavior(),
		mode:     Variant,
		tokens:   config.DefaultTokens(),
		memoSize: defaultMemoSize,
	}
}

// fixer returns a *[Fixer] instance.
func (r *runOptions) fixer() (*Fixer, error) {
	c, err := classify.New(r.tokens, r.memoSize)
	if err != nil {
		return nil, err
	}

	f := &Fixer{
		classifier:   c,
		mode:         r.mode,
		includeTyped: r.behavior.Enabled(config.IncludeTyped),
	}

	return f, nil
}
