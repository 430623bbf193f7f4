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

package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	count  lipgloss.Style
	hits   lipgloss.Style
	clean  lipgloss.Style
	failed lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		count:  r.NewStyle().Bold(true),
		hits:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5A50A")),
		clean:  r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		failed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E01B24")),
	}
}
