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
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/inferguard/internal/run"
	"fillmore-labs.com/inferguard/internal/watch"
)

func (a *app) watchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Watch .gd files and process them when they change",
		Long: `watch observes the tree below path and runs the fixer on every changed .gd file,
using the same report and write flags as the root command. It stops on interrupt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)

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

			w, err := watch.New(root, a.collectOptions(settings), debounce, a.logger)
			if err != nil {
				return err
			}

			r := a.reporter()
			o := a.runOptions(settings, r)

			a.logger.Info("Watching", zap.String("root", root))

			return w.Run(cmd.Context(), func(ctx context.Context, files []string) error {
				summary, err := o.Run(ctx, f, files)
				if err != nil {
					return err
				}

				return r.Summary(summary)
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before changed files are processed")

	return cmd
}
