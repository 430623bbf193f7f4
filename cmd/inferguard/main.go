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

// Command inferguard rewrites GDScript declarations that infer a Variant.
//
// Usage:
//
//	inferguard [path] [flags]
//	inferguard tabs [path] [flags]
//	inferguard watch [path] [flags]
//	inferguard version
//
// Exit status is 0 on success, 1 when --report found candidate lines and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK    = 0
	exitHits  = 1
	exitUsage = 2
)

// errHits signals candidate lines in report mode.
var errHits = errors.New("candidate lines found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runCLI(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// runCLI executes the command line args and returns the exit status.
func runCLI(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, errHits):
		return exitHits

	default:
		fmt.Fprintf(stderr, "inferguard: %v\n", err)

		return exitUsage
	}
}
