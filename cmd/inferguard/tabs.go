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
	"github.com/spf13/cobra"

	"fillmore-labs.com/inferguard/internal/config"
	"fillmore-labs.com/inferguard/internal/indent"
	"fillmore-labs.com/inferguard/internal/run"
)

func (a *app) tabsCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "tabs [path]",
		Short: "Convert leading spaces of .gd files to tabs",
		Long: `tabs replaces every full run of --tab-width leading spaces with a tab. Line endings,
the byte order mark and lines without leading spaces are kept unchanged.`,
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

			if settings.TabWidth != nil && !cmd.Flags().Changed("tab-width") {
				width = *settings.TabWidth
			}

			n, err := indent.New(width)
			if err != nil {
				return err
			}

			return a.process(cmd.Context(), root, settings, n)
		},
	}

	cmd.Flags().IntVar(&width, "tab-width", config.TabWidth, "number of spaces per tab")

	return cmd
}
