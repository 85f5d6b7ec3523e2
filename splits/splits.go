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

// Package splits carves the canonical training split into filtered variants
// for disagreement experiments.
package splits

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/crowdlabel/mdagreement/data"
)

const (
	// HighAgreement keeps only A++ and A+ examples.
	HighAgreement = "App"
	// AllTiers keeps everything.
	AllTiers = "App_A0all"
	// Subjectivity keeps A++/A+ plus A0 examples of the Subjectivity category.
	Subjectivity = "App_A0_SUBJ"
	// MissingInfo keeps A++/A+ plus A0 examples of the Missing_Info category.
	MissingInfo = "App_A0_MISS"
	// Ambiguity keeps A++/A+ plus A0 examples of the Ambiguity category.
	Ambiguity = "App_A0_AMB"
)

func normCategory(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
}

func highAgreement(row *data.Row) bool {
	return row.Tier == data.AFull || row.Tier == data.AHigh
}

func lowAgreementIn(row *data.Row, category string) bool {
	return row.Tier == data.ALow && normCategory(row.Category) == normCategory(category)
}

func filter(rows []*data.Row, keep func(*data.Row) bool) []*data.Row {
	result := []*data.Row{}
	for _, row := range rows {
		if keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// Variants returns the training variant row sets keyed by variant name.
func Variants(rows []*data.Row) map[string][]*data.Row {
	return map[string][]*data.Row{
		HighAgreement: filter(rows, highAgreement),
		AllTiers:      append([]*data.Row{}, rows...),
		Subjectivity: filter(rows, func(row *data.Row) bool {
			return highAgreement(row) || lowAgreementIn(row, "Subjectivity")
		}),
		MissingInfo: filter(rows, func(row *data.Row) bool {
			return highAgreement(row) || lowAgreementIn(row, "Missing_Info")
		}),
		Ambiguity: filter(rows, func(row *data.Row) bool {
			return highAgreement(row) || lowAgreementIn(row, "Ambiguity")
		}),
	}
}

func copyFile(source, dest string) error {
	b, err := os.ReadFile(source)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, b, 0644)
}

// Materialize writes one directory per variant under outRoot, each holding
// the filtered train.tsv and verbatim copies of dev.tsv and test.tsv from
// baseDir. It returns the training row count per variant.
func Materialize(baseDir, outRoot string) (map[string]int, error) {
	trainRows, err := data.ReadTSV(filepath.Join(baseDir, "train.tsv"))
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for name, rows := range Variants(trainRows) {
		outDir := filepath.Join(outRoot, name)
		if err := data.WriteTSV(filepath.Join(outDir, "train.tsv"), rows); err != nil {
			return nil, err
		}
		for _, split := range []string{"dev.tsv", "test.tsv"} {
			if err := copyFile(filepath.Join(baseDir, split), filepath.Join(outDir, split)); err != nil {
				return nil, err
			}
		}
		counts[name] = len(rows)
	}
	return counts, nil
}
