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

package run

import (
	"io"

	"go.uber.org/zap"

	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/report"
	"fillmore-labs.com/inferguard/internal/source"
)

// ConfirmFunc decides whether the edits of a file are written. An error aborts the run.
type ConfirmFunc func(res source.Result) (bool, error)

// Options represent the configuration of a batch run.
type Options struct {
	// Behavior holds the report and write switches.
	Behavior config.BitMask[config.Behavior]

	// Jobs is the number of files scanned concurrently. Values below 2 scan sequentially.
	Jobs int

	// Confirm is asked before each file is written when [config.Confirm] is enabled.
	Confirm ConfirmFunc

	// Reporter receives results.
	Reporter *report.Reporter

	// Logger receives diagnostics.
	Logger *zap.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
// Results are discarded.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Jobs:     1,
		Reporter: report.New(io.Discard, io.Discard),
		Logger:   zap.NewNop(),
	}
}
