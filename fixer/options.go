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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/inferguard/internal/config"
)

// Option configures specific behavior of a [New] fixer.
type Option interface {
	apply(r *runOptions)
	LogField() zap.Field
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// MarshalLogObject implements [zapcore.ObjectMarshaler].
func (o Options) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			enc.AddString("nil", "<nil>")

		case Options:
			if err := opt.MarshalLogObject(enc); err != nil {
				return err
			}

		default:
			opt.LogField().AddTo(enc)
		}
	}

	return nil
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogField is for logging with [zap.Logger].
func (o Options) LogField() zap.Field {
	return zap.Object("options", o)
}

// WithIncludeTyped is an [Option] to rewrite declarations that already have a type annotation.
func WithIncludeTyped(includeTyped bool) Option {
	return includeTypedOption{includeTyped: includeTyped}
}

type includeTypedOption struct{ includeTyped bool }

func (o includeTypedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeTyped, o.includeTyped)
}

func (o includeTypedOption) LogField() zap.Field {
	return zap.Bool("include-typed", o.includeTyped)
}

// WithMode is an [Option] to select the replacement for the inferred-assignment operator.
func WithMode(mode Mode) Option { return modeOption{mode: mode} }

type modeOption struct{ mode Mode }

func (o modeOption) apply(r *runOptions) {
	r.mode = o.mode
}

func (o modeOption) LogField() zap.Field {
	return zap.Stringer("mode", o.mode)
}

// WithExtraTokens is an [Option] to add suspicious substrings to the built-in list.
// Tokens of repeated options accumulate.
func WithExtraTokens(tokens ...string) Option { return extraTokensOption{tokens: tokens} }

type extraTokensOption struct{ tokens []string }

func (o extraTokensOption) apply(r *runOptions) {
	r.tokens = config.Merge(r.tokens, o.tokens...)
}

func (o extraTokensOption) LogField() zap.Field {
	return zap.Strings("extra-tokens", o.tokens)
}

// WithMemoSize is an [Option] to set the number of remembered classifications. Zero disables
// the cache.
func WithMemoSize(size int) Option { return memoSizeOption{size: size} }

type memoSizeOption struct{ size int }

func (o memoSizeOption) apply(r *runOptions) {
	r.memoSize = o.size
}

func (o memoSizeOption) LogField() zap.Field {
	return zap.Int("memo-size", o.size)
}
