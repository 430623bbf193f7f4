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

package source

import (
	"regexp"
	"strings"

	"fillmore-labs.com/inferguard/internal/lexical"
)

// inferguard is the name of the tool used in suppression comments.
const inferguard = "inferguard"

var nolintPattern = regexp.MustCompile(`^\s*nolint:([a-zA-Z0-9,_-]+)`)

// NoLint checks if a line ends with a `# nolint:inferguard` or `# nolint:all` comment.
func NoLint(body string) bool {
	comment, ok := lexical.Comment(body)
	if !ok {
		return false
	}

	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == inferguard || l == "all" {
			return true
		}
	}

	return false
}
