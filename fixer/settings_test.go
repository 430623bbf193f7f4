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

package fixer_test

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	. "fillmore-labs.com/inferguard/fixer"
)

const allSettings = `
include-typed: true
mode: equals
extra-tokens: ["Engine.", "Time."]
memo-size: 10
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := yaml.NewDecoder(strings.NewReader(tc.settings))
			dec.KnownFields(true)

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				enc := zapcore.NewMapObjectEncoder()
				_ = got.MarshalLogObject(enc)
				t.Errorf("Got %d options: %v, want %d", len(got), enc.Fields, tc.want)
			}
		})
	}
}

func TestSettingsMode(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := yaml.Unmarshal([]byte("mode: equals\n"), &s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	f, err := New(s.Options())
	if err != nil {
		t.Fatalf("Can't create fixer: %v", err)
	}

	if f.Mode() != Equals {
		t.Errorf("Got mode %v, want %v", f.Mode(), Equals)
	}

	if err := yaml.Unmarshal([]byte("mode: strict\n"), &s); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
