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

// Package config generates JSON configurations for single- and multi-task
// training setups over the canonical splits.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Mode selects which auxiliary tasks a config trains besides offense
// classification.
type Mode string

const (
	// Single trains the offense task alone.
	Single Mode = "single"
	// MTL3 adds the three-way agreement tier as an auxiliary task.
	MTL3 Mode = "mtl3"
	// MTL6 adds the six-way tier+label as an auxiliary task.
	MTL6 Mode = "mtl6"
)

// ParseMode validates a mode flag value.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case Single, MTL3, MTL6:
		return Mode(raw), nil
	}
	return "", fmt.Errorf("unknown mode %q, want one of %q, %q, or %q", raw, Single, MTL3, MTL6)
}

// Task describes one classification task over a canonical column.
type Task struct {
	TaskType  string `json:"task_type"`
	ColumnIdx int    `json:"column_idx"`
}

// Dataset describes the splits and tasks of one training dataset.
type Dataset struct {
	TrainDataPath string          `json:"train_data_path"`
	DevDataPath   string          `json:"dev_data_path"`
	TestDataPath  string          `json:"test_data_path"`
	SentIdxs      []int           `json:"sent_idxs"`
	Tasks         map[string]Task `json:"tasks"`
}

// Config maps dataset names to their training setups.
type Config map[string]Dataset

// DatasetName is the name of the single dataset block the configs describe.
const DatasetName = "MD"

// New returns the training config for a split directory in the given mode.
func New(splitDir string, mode Mode) Config {
	tasks := map[string]Task{
		"offense": {TaskType: "classification", ColumnIdx: 1},
	}
	switch mode {
	case MTL3:
		tasks["agr3"] = Task{TaskType: "classification", ColumnIdx: 2}
	case MTL6:
		tasks["agr6"] = Task{TaskType: "classification", ColumnIdx: 3}
	}
	return Config{
		DatasetName: {
			TrainDataPath: filepath.Join(splitDir, "train.tsv"),
			DevDataPath:   filepath.Join(splitDir, "dev.tsv"),
			TestDataPath:  filepath.Join(splitDir, "test.tsv"),
			SentIdxs:      []int{0},
			Tasks:         tasks,
		},
	}
}

// Write writes the config as indented JSON, creating the parent directory if
// needed.
func (c Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil && !os.IsExist(err) {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
