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
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/inferguard/fixer"
	"fillmore-labs.com/inferguard/internal/config"
)

// fileSettings is the content of a settings file.
type fileSettings struct {
	fixer.Settings `yaml:",inline"`

	// Exclude adds path substrings to the default excludes.
	Exclude []string `yaml:"exclude,omitempty"`
	// ExcludeGlob adds doublestar patterns relative to the root.
	ExcludeGlob []string `yaml:"exclude-glob,omitempty"`
	// Backup writes a .bak file before changing a file.
	Backup *bool `yaml:"backup,omitempty"`
	// Jobs sets the number of files scanned concurrently.
	Jobs *int `yaml:"jobs,omitempty"`
	// TabWidth sets the width used by the tabs command.
	TabWidth *int `yaml:"tab-width,omitempty"`
}

// loadSettings reads the settings file at path. When path is empty, the default settings
// file in root is read if it exists.
func loadSettings(path, root string) (fileSettings, error) {
	var s fileSettings

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, config.SettingsFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return s, fmt.Errorf("settings: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}

	return s, nil
}
