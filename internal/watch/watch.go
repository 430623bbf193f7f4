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

// Package watch observes a source tree and hands batches of changed files to a handler.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"fillmore-labs.com/inferguard/internal/collect"
)

// DefaultDebounce is the quiet period after the last event before a batch is handled.
const DefaultDebounce = 300 * time.Millisecond

// Handler processes a sorted batch of changed files. An error stops watching.
type Handler func(ctx context.Context, files []string) error

// Watcher watches a directory tree recursively.
type Watcher struct {
	root     string
	filter   collect.Options
	debounce time.Duration
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	ready    chan struct{}
}

// New creates a [Watcher] for root. Files are selected and directories pruned by filter,
// its scope is ignored.
func New(root string, filter collect.Options, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:     root,
		filter:   filter,
		debounce: debounce,
		logger:   logger,
		watcher:  w,
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the initial directories are watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done or handle fails. The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer w.watcher.Close()

	if err := w.addTree(w.root); err != nil {
		return err
	}

	close(w.ready)

	pending := make(map[string]struct{})

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if w.handleEvent(event, pending) {
				fire = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("Watch error", zap.Error(err))

		case <-fire:
			fire = nil

			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}

			clear(pending)
			slices.Sort(files)

			w.logger.Debug("Handling changed files", zap.Strings("files", files))

			if err := handle(ctx, files); err != nil {
				return err
			}
		}
	}
}

// handleEvent records a changed file and reports whether a batch is pending.
func (w *Watcher) handleEvent(event fsnotify.Event, pending map[string]struct{}) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)

	fi, err := os.Stat(event.Name)
	if err != nil {
		return false
	}

	if fi.IsDir() {
		if event.Has(fsnotify.Create) && !w.filter.Prunes(rel) {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("Can't watch directory", zap.String("path", event.Name), zap.Error(err))
			}
		}

		return false
	}

	if ok, _ := w.filter.Selects(rel); !ok {
		return false
	}

	pending[event.Name] = struct{}{}

	return true
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if rel, err := filepath.Rel(w.root, path); err == nil && rel != "." && w.filter.Prunes(filepath.ToSlash(rel)) {
			return filepath.SkipDir
		}

		w.logger.Debug("Watching directory", zap.String("path", path))

		return w.watcher.Add(path)
	})
}
