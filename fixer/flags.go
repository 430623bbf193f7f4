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
	"github.com/spf13/pflag"

	"fillmore-labs.com/inferguard/internal/flagvalue"
)

// Flags holds fixer options bound to command line flags.
type Flags struct {
	fs           *pflag.FlagSet
	includeTyped bool
	mode         Mode
	extraTokens  []string
}

// RegisterFlags binds the fixer options to flags in fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs, mode: Variant}

	fs.BoolVar(&f.includeTyped, "include-typed", false, "also rewrite declarations with a type annotation")
	fs.Var(flagvalue.Choice(&f.mode, ParseMode, "mode"), "mode", "replacement style: variant or equals")
	fs.StringArrayVar(&f.extraTokens, "extra-token", nil, "additional suspicious substring (repeatable)")

	return f
}

// Options returns the [Options] of all flags given on the command line.
func (f *Flags) Options() Options {
	var opts Options

	if f.fs.Changed("include-typed") {
		opts = append(opts, WithIncludeTyped(f.includeTyped))
	}

	if f.fs.Changed("mode") {
		opts = append(opts, WithMode(f.mode))
	}

	if len(f.extraTokens) > 0 {
		opts = append(opts, WithExtraTokens(f.extraTokens...))
	}

	return opts
}
