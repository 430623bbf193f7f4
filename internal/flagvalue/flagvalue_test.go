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

package flagvalue_test

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/rewrite"

	. "fillmore-labs.com/inferguard/internal/flagvalue"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Write,
			args:    []string{"--report"},
			want:    true,
		},
		{
			name:    "Alias",
			initial: config.Write,
			args:    []string{"--dry-run"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.Report,
			args:    []string{"--report=false"},
			want:    false,
		},
		{
			name:    "Untouched",
			initial: config.Report,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

			const value = config.Report
			BoolVar(fs, &flags, value, "report", "list candidate lines")
			BoolVar(fs, &flags, value, "dry-run", "alias for --report")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got := fs.Lookup("report").Value.String(); got != "true" && tt.want || got != "false" && !tt.want {
				t.Errorf("Flag value = %s, want %v", got, tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("Report enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(config.Write) && tt.initial == config.Write {
				t.Errorf("Other flag changed")
			}
		})
	}
}

func TestBoolInvalid(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Behavior]

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	BoolVar(fs, &flags, config.Backup, "backup", "write backups")

	if err := fs.Parse([]string{"--backup=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestChoice(t *testing.T) {
	t.Parallel()

	mode := rewrite.ExplicitDynamic

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(Choice(&mode, rewrite.ParseMode, "mode"), "mode", "rewrite style")

	if got, want := fs.Lookup("mode").DefValue, "variant"; got != want {
		t.Errorf("Got default %q, want %q", got, want)
	}

	if err := fs.Parse([]string{"--mode", "equals"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mode != rewrite.Equals {
		t.Errorf("Got mode %v, want %v", mode, rewrite.Equals)
	}

	if err := fs.Parse([]string{"--mode=strict"}); err == nil {
		t.Error("Expected parse error for unknown mode")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.Backup)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BoolVar(fs, &flags, config.Backup, "backup", "write a .bak file")

	if got := fs.FlagUsages(); !strings.Contains(got, "--backup") || !strings.Contains(got, "write a .bak file") {
		t.Errorf("FlagUsages() = %q, want backup flag", got)
	}
}
