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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/inferguard/fixer"
	"fillmore-labs.com/inferguard/internal/collect"
	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/flagvalue"
	"fillmore-labs.com/inferguard/internal/report"
	"fillmore-labs.com/inferguard/internal/run"
	"fillmore-labs.com/inferguard/internal/source"
)

// app holds the state of one command line invocation.
type app struct {
	in     *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger

	behavior   config.BitMask[config.Behavior]
	excludes   []string
	globs      []string
	tracked    bool
	staged     bool
	changed    bool
	base       string
	jobs       int
	configPath string
	verbose    bool

	shared       *pflag.FlagSet
	listPatterns bool
	fixerFlags   *fixer.Flags
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		in:       bufio.NewReader(stdin),
		stdout:   stdout,
		stderr:   stderr,
		logger:   zap.NewNop(),
		behavior: config.DefaultBehavior(),
	}

	cmd := &cobra.Command{
		Use:   "inferguard [path]",
		Short: "Rewrite GDScript declarations that infer a Variant",
		Long: `inferguard scans .gd files for single-line declarations "var x := expr" whose
right-hand side likely infers a Variant, like get_node(...) or null, and rewrites them to
"var x: Variant = expr" (or "var x = expr" with --mode equals). Every other line is left
byte-for-byte untouched.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.logger = newLogger(a.stderr, a.verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runFix,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	a.registerFlags(cmd)

	a.fixerFlags = fixer.RegisterFlags(cmd.PersistentFlags())
	cmd.Flags().BoolVar(&a.listPatterns, "list-patterns", false, "print the suspicious tokens and exit")

	cmd.AddCommand(a.tabsCommand(), a.watchCommand(), versionCommand(stdout))

	return cmd
}

// registerFlags defines the flags shared by all scanning commands.
func (a *app) registerFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	a.shared = fs

	flagvalue.BoolVar(fs, &a.behavior, config.Write, "write", "apply changes in place")
	flagvalue.BoolVar(fs, &a.behavior, config.Report, "report", "list candidate lines without changing files")
	flagvalue.BoolVar(fs, &a.behavior, config.Report, "dry-run", "alias for --report")
	flagvalue.BoolVar(fs, &a.behavior, config.Backup, "backup", "write a .bak file next to each modified file")
	flagvalue.BoolVar(fs, &a.behavior, config.Confirm, "confirm", "ask before modifying each file")
	flagvalue.BoolVar(fs, &a.behavior, config.Diff, "diff", "print a unified diff for each file with candidates")

	fs.StringArrayVar(&a.excludes, "exclude", nil, "additional path substring to skip (repeatable)")
	fs.StringArrayVar(&a.globs, "exclude-glob", nil, "glob relative to the root to skip, like 'assets/**' (repeatable)")

	fs.BoolVar(&a.tracked, "git-tracked", false, "limit to .gd files tracked by git")
	fs.BoolVar(&a.staged, "staged", false, "limit to staged .gd files")
	fs.BoolVar(&a.changed, "changed-only", false, "limit to .gd files changed relative to --base")
	fs.StringVar(&a.base, "base", collect.DefaultBase, "revision for --changed-only")
	cmd.MarkFlagsMutuallyExclusive("git-tracked", "staged", "changed-only")

	fs.IntVar(&a.jobs, "jobs", 1, "number of files scanned concurrently")
	fs.StringVar(&a.configPath, "config", "", "settings file (default <path>/"+config.SettingsFile+")")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
}

func (a *app) runFix(cmd *cobra.Command, args []string) error {
	root := rootArg(args)

	if a.listPatterns {
		return a.patterns(root)
	}

	if err := run.CheckRoot(root); err != nil {
		return err
	}

	settings, err := loadSettings(a.configPath, root)
	if err != nil {
		return err
	}

	f, err := a.newFixer(settings)
	if err != nil {
		return err
	}

	return a.process(cmd.Context(), root, settings, f)
}

// patterns prints the effective tokens. The settings file of root is only read when root
// is a directory.
func (a *app) patterns(root string) error {
	var settings fileSettings

	if run.CheckRoot(root) == nil || a.configPath != "" {
		var err error
		if settings, err = loadSettings(a.configPath, root); err != nil {
			return err
		}
	}

	f, err := a.newFixer(settings)
	if err != nil {
		return err
	}

	return a.reporter().Patterns(f.Tokens())
}

// newFixer creates a fixer from the settings file, overridden by command line flags.
func (a *app) newFixer(settings fileSettings) (*fixer.Fixer, error) {
	opts := fixer.Options{settings.Options(), a.fixerFlags.Options()}

	f, err := fixer.New(opts)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Fixer configured", opts.LogField())

	return f, nil
}

// process runs rw over the selected files below root.
func (a *app) process(ctx context.Context, root string, settings fileSettings, rw source.Rewriter) error {
	files, err := collect.Files(ctx, root, a.collectOptions(settings))
	if err != nil {
		return err
	}

	a.logger.Debug("Collected files", zap.String("root", root), zap.Int("files", len(files)))

	r := a.reporter()
	o := a.runOptions(settings, r)

	summary, err := o.Run(ctx, rw, files)
	if err != nil {
		return err
	}

	if err := r.Summary(summary); err != nil {
		return err
	}

	if o.Behavior.Enabled(config.Report) && summary.Hits > 0 {
		return errHits
	}

	return nil
}

func (a *app) reporter() *report.Reporter {
	return report.New(a.stdout, a.stderr)
}

func (a *app) scope() collect.Scope {
	switch {
	case a.tracked:
		return collect.Tracked
	case a.staged:
		return collect.Staged
	case a.changed:
		return collect.Changed
	default:
		return collect.All
	}
}

func (a *app) collectOptions(settings fileSettings) collect.Options {
	return collect.Options{
		Scope:     a.scope(),
		Base:      a.base,
		Extension: config.Extension,
		Excludes:  config.Merge(config.DefaultExcludes(), append(settings.Exclude, a.excludes...)...),
		Globs:     config.Merge(settings.ExcludeGlob, a.globs...),
		Logger:    a.logger,
	}
}

func (a *app) runOptions(settings fileSettings, r *report.Reporter) *run.Options {
	o := run.DefaultOptions()
	o.Behavior = a.behavior
	o.Jobs = a.jobs
	o.Reporter = r
	o.Logger = a.logger
	o.Confirm = a.confirm

	if settings.Backup != nil && !a.flagSet("backup") {
		o.Behavior.Set(config.Backup, *settings.Backup)
	}

	if settings.Jobs != nil && !a.flagSet("jobs") {
		o.Jobs = *settings.Jobs
	}

	return o
}

// flagSet reports whether a shared flag was given on the command line.
func (a *app) flagSet(name string) bool {
	return a.shared.Changed(name)
}

// confirm asks on the terminal whether to write the edits of a file.
func (a *app) confirm(res source.Result) (bool, error) {
	fmt.Fprintf(a.stderr, "Apply %d change(s) to %s? [y/N] ", res.Hits(), res.File.Path())

	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}

// newLogger creates a console logger on w using the production encoder settings.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core)
}
