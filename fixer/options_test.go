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
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"

	. "fillmore-labs.com/inferguard/fixer"
)

func TestOptionsLog(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithIncludeTyped(true),
		nil,
		Options{WithMode(Equals), WithMemoSize(16)},
	}

	enc := zapcore.NewMapObjectEncoder()
	if err := opts.MarshalLogObject(enc); err != nil {
		t.Fatalf("MarshalLogObject failed: %v", err)
	}

	want := map[string]any{
		"include-typed": true,
		"nil":           "<nil>",
		"mode":          "equals",
		"memo-size":     int64(16),
	}

	if diff := cmp.Diff(want, enc.Fields); diff != "" {
		t.Errorf("Logged options mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsField(t *testing.T) {
	t.Parallel()

	field := Options{WithExtraTokens("Engine.")}.LogField()

	if field.Key != "options" || field.Type != zapcore.ObjectMarshalerType {
		t.Errorf("Got field %s of type %v, want options object", field.Key, field.Type)
	}
}
