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

package collect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGit is returned when git is missing or a git command fails.
var ErrGit = errors.New("git failed")

// gitFiles returns the slash-separated paths below root, relative to root, that git lists
// for scope. Deleted files are omitted.
func gitFiles(ctx context.Context, root string, scope Scope, base string) ([]string, error) {
	top, err := git(ctx, root, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}

	topLevel := strings.TrimSpace(string(top))

	prefix, err := relativeRoot(topLevel, root)
	if err != nil {
		return nil, err
	}

	var args []string

	switch scope {
	case Tracked:
		args = []string{"ls-files", "-z"}
	case Staged:
		args = []string{"diff", "--name-only", "-z", "--diff-filter=d", "--cached"}
	case Changed:
		args = []string{"diff", "--name-only", "-z", "--diff-filter=d", base, "--"}
	default:
		return nil, fmt.Errorf("unsupported git scope %v", scope)
	}

	out, err := git(ctx, topLevel, args...)
	if err != nil {
		return nil, err
	}

	var files []string

	for name := range bytes.SplitSeq(out, []byte{0}) {
		if len(name) == 0 {
			continue
		}

		rel, ok := strings.CutPrefix(string(name), prefix)
		if !ok {
			continue
		}

		files = append(files, rel)
	}

	return files, nil
}

// relativeRoot returns the slash-separated path prefix of root inside the repository at
// topLevel, empty or ending with a slash.
func relativeRoot(topLevel, root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	if resolved, err := filepath.EvalSymlinks(topLevel); err == nil {
		topLevel = resolved
	}

	rel, err := filepath.Rel(topLevel, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository %s: %w", root, topLevel, ErrGit)
	}

	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel) + "/", nil
}

func git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return nil, fmt.Errorf("git %s: %s: %w", args[0], msg, ErrGit)
	}

	return out, nil
}
