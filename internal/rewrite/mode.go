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

package rewrite

import (
	"fmt"
	"strings"
)

// Mode selects how an inferred declaration is rewritten.
type Mode uint8

//go:generate go tool stringer -type Mode -linecomment
const (
	// ExplicitDynamic annotates the declaration with the dynamic type:
	// "var x := e" becomes "var x: Variant = e". This satisfies strict mode.
	ExplicitDynamic Mode = iota // variant

	// Equals drops the inference: "var x := e" becomes "var x = e".
	Equals // equals
)

// Modes lists all rewrite modes in declaration order.
var Modes = [...]Mode{ExplicitDynamic, Equals}

// ParseMode returns the [Mode] with the given name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown rewrite mode %q, expected one of %s", name, modeNames())
}

func modeNames() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}

	return strings.Join(names, ", ")
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
