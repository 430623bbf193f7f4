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

// Settings represents the fixer section of a settings file.
type Settings struct {
	// IncludeTyped rewrites declarations with a type annotation.
	IncludeTyped *bool `yaml:"include-typed,omitempty"`
	// Mode is "variant" or "equals".
	Mode *Mode `yaml:"mode,omitempty"`
	// ExtraTokens are added to the built-in suspicious substrings.
	ExtraTokens []string `yaml:"extra-tokens,omitempty"`
	// MemoSize sets the classification cache size.
	MemoSize *int `yaml:"memo-size,omitempty"`
}

// Options converts [Settings] into a list of [Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() Options {
	var opts Options

	opts = appendOption(opts, s.IncludeTyped, WithIncludeTyped)
	opts = appendOption(opts, s.Mode, WithMode)

	if len(s.ExtraTokens) > 0 {
		opts = append(opts, WithExtraTokens(s.ExtraTokens...))
	}

	opts = appendOption(opts, s.MemoSize, WithMemoSize)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
