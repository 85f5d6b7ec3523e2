// Copyright 2024 The MD-Agreement Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one config of an experiment grid.
type ManifestEntry struct {
	SplitDir string `yaml:"split_dir"`
	Mode     Mode   `yaml:"mode"`
	Out      string `yaml:"out"`
}

// Manifest lists the configs of an experiment grid.
type Manifest struct {
	Configs []ManifestEntry `yaml:"configs"`
}

// LoadManifest reads an experiment manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(b, manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %v", path, err)
	}
	for index, entry := range manifest.Configs {
		if entry.SplitDir == "" || entry.Out == "" {
			return nil, fmt.Errorf("manifest entry %v needs both split_dir and out", index)
		}
		if entry.Mode == "" {
			manifest.Configs[index].Mode = Single
		} else if _, err := ParseMode(string(entry.Mode)); err != nil {
			return nil, fmt.Errorf("manifest entry %v: %v", index, err)
		}
	}
	return manifest, nil
}

// Generate writes every config of the manifest.
func (m *Manifest) Generate() error {
	for _, entry := range m.Configs {
		if err := New(entry.SplitDir, entry.Mode).Write(entry.Out); err != nil {
			return err
		}
	}
	return nil
}
