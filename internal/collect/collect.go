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

// Package collect selects the source files of a run, either by walking a directory tree or
// by asking git for tracked, staged or changed files.
package collect

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"
	"go.uber.org/zap"
)

// Scope selects where the file list comes from.
type Scope uint8

const (
	// All walks the directory tree.
	All Scope = iota

	// Tracked lists the files known to git.
	Tracked

	// Staged lists files with staged changes.
	Staged

	// Changed lists files changed relative to a base revision.
	Changed
)

func (s Scope) String() string {
	switch s {
	case All:
		return "all"
	case Tracked:
		return "tracked"
	case Staged:
		return "staged"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("Scope(%d)", s)
	}
}

// DefaultBase is the revision [Changed] compares against.
const DefaultBase = "HEAD"

// Options configure file selection.
type Options struct {
	// Scope selects the file source.
	Scope Scope

	// Base is the revision for [Changed], [DefaultBase] when empty.
	Base string

	// Extension is the required file name suffix.
	Extension string

	// Excludes are path substrings. A path is tested relative to the root with a leading
	// slash, directories also with a trailing slash.
	Excludes []string

	// Globs are doublestar patterns matched against slash-separated paths relative to the root.
	Globs []string

	// Logger receives debug messages about pruned paths.
	Logger *zap.Logger
}

// Files returns the selected files below root. Walked files are sorted, git files keep
// the order git reports.
func Files(ctx context.Context, root string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.Scope == All {
		return walk(ctx, root, opts, logger)
	}

	base := opts.Base
	if base == "" {
		base = DefaultBase
	}

	rels, err := gitFiles(ctx, root, opts.Scope, base)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, rel := range rels {
		keep, err := opts.Selects(rel)
		if err != nil {
			return nil, err
		}

		if !keep {
			logger.Debug("Skipping excluded file", zap.String("path", rel))

			continue
		}

		files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
	}

	return files, nil
}

func walk(ctx context.Context, root string, opts Options, logger *zap.Logger) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			logger.Warn("Can't read directory entry", zap.String("path", path), zap.Error(err))

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && opts.Prunes(rel) {
				logger.Debug("Skipping excluded directory", zap.String("path", path))

				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		keep, err := opts.Selects(rel)
		if err != nil {
			return err
		}

		if keep {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)

	return files, nil
}

// Selects reports whether the file at the slash-separated path rel, relative to the root,
// has the extension and is neither excluded nor matched by a glob.
func (o Options) Selects(rel string) (bool, error) {
	if !strings.HasSuffix(rel, o.Extension) || o.excluded("/"+rel) {
		return false, nil
	}

	for _, pattern := range o.Globs {
		match, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude glob %q: %w", pattern, err)
		}

		if match {
			return false, nil
		}
	}

	return true, nil
}

// Prunes reports whether the directory at the slash-separated path rel is excluded.
func (o Options) Prunes(rel string) bool {
	return o.excluded("/" + rel + "/")
}

func (o Options) excluded(path string) bool {
	for _, ex := range o.Excludes {
		if ex != "" && strings.Contains(path, ex) {
			return true
		}
	}

	return false
}
