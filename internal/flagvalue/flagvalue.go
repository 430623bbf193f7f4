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

// Package flagvalue provides [pflag.Value] implementations binding command line flags to
// bit masks and enumerations.
package flagvalue

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Bool returns a boolean [pflag.Value] that sets value in flags.
// Register it with [BoolVar] so the flag can be given without argument.
func Bool[F any, B boolFlag[F]](flags B, value F) pflag.Value {
	return boolValue[F, B]{flags: flags, value: value}
}

// BoolVar defines a boolean flag that sets value in flags. Several flags may share a value,
// making them aliases.
func BoolVar[F any, B boolFlag[F]](fs *pflag.FlagSet, flags B, value F, name, usage string) {
	f := fs.VarPF(Bool(flags, value), name, "", usage)
	f.NoOptDefVal = "true"
}

// Set implements [pflag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [pflag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Type implements [pflag.Value].
func (f boolValue[_, _]) Type() string { return "bool" }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "yes", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off", "no", "No":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type choiceValue[T fmt.Stringer] struct {
	target *T
	parse  func(string) (T, error)
	name   string
}

// Choice returns a [pflag.Value] storing the result of parse in target.
// typeName is shown in the usage message.
func Choice[T fmt.Stringer](target *T, parse func(string) (T, error), typeName string) pflag.Value {
	return choiceValue[T]{target: target, parse: parse, name: typeName}
}

// Set implements [pflag.Value].
func (c choiceValue[T]) Set(s string) error {
	v, err := c.parse(s)
	if err != nil {
		return err
	}

	*c.target = v

	return nil
}

// String implements [pflag.Value].
func (c choiceValue[T]) String() string {
	if c.target == nil {
		return ""
	}

	return (*c.target).String()
}

// Type implements [pflag.Value].
func (c choiceValue[T]) Type() string { return c.name }
