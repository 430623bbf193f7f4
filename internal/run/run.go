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

// Package run drives a batch of files through a line rewriter, reporting and writing the
// results in input order.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/trace"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/report"
	"fillmore-labs.com/inferguard/internal/source"
)

// ErrNotDirectory is returned when the root of a run is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ErrNoConfirm is returned when confirmation is enabled without a [ConfirmFunc].
var ErrNoConfirm = errors.New("confirmation requested without prompt")

// CheckRoot verifies that root is an existing directory.
func CheckRoot(root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	return nil
}

// FileResult is the outcome of processing one file.
type FileResult struct {
	// Path is the file name.
	Path string

	// Result holds the edits. It is empty when Err is set.
	Result source.Result

	// Err is the error that prevented scanning, if any.
	Err error
}

// Run rewrites files with rw. Per-file errors are logged and counted; the returned error
// is a context or confirmation error that stopped the batch.
func (o *Options) Run(ctx context.Context, rw source.Rewriter, files []string) (report.Summary, error) {
	ctx, task := trace.NewTask(ctx, "InferGuard")
	defer task.End()

	trace.Log(ctx, "files", strconv.Itoa(len(files)))

	if o.Behavior.Enabled(config.Confirm) && o.Behavior.Enabled(config.Write) && o.Confirm == nil {
		return report.Summary{}, ErrNoConfirm
	}

	b := batch{Options: o, summary: report.Summary{Files: len(files)}}

	var err error
	if jobs := o.jobs(); jobs > 1 {
		err = b.parallel(ctx, rw, files, jobs)
	} else {
		err = b.sequential(ctx, rw, files)
	}

	o.Logger.Debug("Run finished",
		zap.Int("files", b.summary.Files),
		zap.Int("hits", b.summary.Hits),
		zap.Int("changes", b.summary.Changes),
		zap.Error(err),
	)

	return b.summary, err
}

func (o *Options) jobs() int {
	if o.Behavior.Enabled(config.Confirm) {
		return 1
	}

	return o.Jobs
}

type batch struct {
	*Options
	summary report.Summary
}

func (b *batch) sequential(ctx context.Context, rw source.Rewriter, files []string) error {
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		fr := b.scan(ctx, rw, path)
		if err := b.finish(fr); err != nil {
			return err
		}
	}

	return nil
}

// parallel scans up to jobs files concurrently while finishing them in input order.
func (b *batch) parallel(ctx context.Context, rw source.Rewriter, files []string, jobs int) error {
	results := make([]FileResult, len(files))
	done := make([]chan struct{}, len(files))

	for i := range done {
		done[i] = make(chan struct{})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	finished := make(chan error, 1)

	go func() {
		err := b.ordered(ctx, results, done)
		if err != nil {
			cancel()
		}
		finished <- err
	}()

	for i, path := range files {
		g.Go(func() error {
			defer close(done[i])

			if err := gctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err}

				return err
			}

			results[i] = b.scan(gctx, rw, path)

			return nil
		})
	}

	werr := g.Wait()
	ferr := <-finished

	if ferr != nil {
		return ferr
	}

	if werr != nil {
		return werr
	}

	return ctx.Err()
}

// ordered finishes results in index order as they become available.
func (b *batch) ordered(ctx context.Context, results []FileResult, done []chan struct{}) error {
	for i := range results {
		<-done[i]

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := b.finish(results[i]); err != nil {
			return err
		}
	}

	return nil
}

// scan reads and rewrites one file without side effects.
func (b *batch) scan(ctx context.Context, rw source.Rewriter, path string) FileResult {
	f, err := source.Read(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	return FileResult{Path: path, Result: source.Scan(ctx, f, rw)}
}

// finish reports and writes one scanned file. Only reporter and confirmation errors are
// returned.
func (b *batch) finish(fr FileResult) error {
	if fr.Err != nil {
		b.Logger.Warn("Skipping unreadable file", zap.String("path", fr.Path), zap.Error(fr.Err))
		b.summary.Failed++

		return nil
	}

	res := fr.Result
	if !res.Filtered {
		b.summary.Scanned++
	}

	hits := res.Hits()
	if hits == 0 {
		return nil
	}

	b.Logger.Debug("Found candidates", zap.String("path", fr.Path), zap.Int("hits", hits))
	b.summary.Hits += hits

	if b.Behavior.Enabled(config.Report) {
		if err := b.Reporter.Hits(res); err != nil {
			return err
		}
	}

	if b.Behavior.Enabled(config.Diff) {
		if err := b.Reporter.Diff(res); err != nil {
			return err
		}
	}

	if !b.Behavior.Enabled(config.Write) {
		return nil
	}

	if b.Behavior.Enabled(config.Confirm) {
		ok, err := b.Confirm(res)
		if err != nil {
			return fmt.Errorf("confirm %s: %w", fr.Path, err)
		}

		if !ok {
			b.Logger.Info("Skipping declined file", zap.String("path", fr.Path))

			return nil
		}
	}

	if err := b.write(res); err != nil {
		b.Logger.Error("Can't write file", zap.String("path", fr.Path), zap.Error(err))
		b.summary.Failed++

		return b.Reporter.Failed(fr.Path, err)
	}

	b.summary.Changes += hits

	return b.Reporter.Updated(res)
}

// write stores the rewritten content, after saving a backup if requested.
func (b *batch) write(res source.Result) error {
	path := res.File.Path()

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	if b.Behavior.Enabled(config.Backup) {
		if err := os.WriteFile(path+config.BackupSuffix, res.File.Raw(), perm); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
	}

	return os.WriteFile(path, res.Output(), perm)
}
