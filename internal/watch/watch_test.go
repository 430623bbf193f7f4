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

package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"fillmore-labs.com/inferguard/internal/collect"
	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/testsource"

	. "fillmore-labs.com/inferguard/internal/watch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatch(t *testing.T) {
	root := testsource.Tree(t, `
-- main.gd --
extends Node
-- addons/p.gd --
extends Node
`)

	filter := collect.Options{Extension: config.Extension, Excludes: config.DefaultExcludes()}

	w, err := New(root, filter, 50*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	batches := make(chan []string, 4)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(_ context.Context, files []string) error {
			batches <- files

			return nil
		})
	}()

	select {
	case <-w.Ready():
	case <-ctx.Done():
		t.Fatal("Watcher not ready")
	}

	write := func(name, content string) {
		t.Helper()

		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("addons/p.gd", "var x := null\n")
	write("notes.txt", "x")
	write("main.gd", "var x := null\n")

	select {
	case files := <-batches:
		assert.Equal(t, []string{filepath.Join(root, "main.gd")}, files)
	case <-ctx.Done():
		t.Fatal("No batch received")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestHandlerError(t *testing.T) {
	root := t.TempDir()

	w, err := New(root, collect.Options{Extension: config.Extension}, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	errStop := errors.New("stop")
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(context.Context, []string) error { return errStop })
	}()

	<-w.Ready()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.gd"), []byte("var x := 1\n"), 0o644))

	select {
	case err := <-done:
		require.ErrorIs(t, err, errStop)
	case <-ctx.Done():
		t.Fatal("Watcher did not stop")
	}
}

func TestMissingRoot(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), collect.Options{}, 0, nil)
	require.NoError(t, err)

	require.Error(t, w.Run(t.Context(), func(context.Context, []string) error { return nil }))
}
