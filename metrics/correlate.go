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

package metrics

import (
	"fmt"
	"math"

	"github.com/crowdlabel/mdagreement/data"
	"github.com/dgryski/go-onlinestats"
)

// RunCorrelation contains the correlation score between two prediction runs.
type RunCorrelation struct {
	RunA  string
	RunB  string
	Score float64
}

// CorrelationTable contains the pairwise correlations between a set of prediction runs.
type CorrelationTable [][]RunCorrelation

func (c CorrelationTable) String() string {
	result := Table{}
	header := TableRow{""}
	for _, score := range c[0] {
		header = append(header, score.RunB)
	}
	result = append(result, header)
	for _, scores := range c {
		row := TableRow{scores[0].RunA}
		for _, score := range scores {
			row = append(row, fmt.Sprintf("%.2f", score.Score))
		}
		result = append(result, row)
	}
	return result.String(2)
}

// Correctness returns the per-example correctness of a run, 1 where the
// prediction matches gold and 0 elsewhere.
func Correctness(gold, preds []data.Label) []float64 {
	result := make([]float64, len(gold))
	for index := range gold {
		if preds[index] == gold[index] {
			result[index] = 1
		}
	}
	return result
}

// CorrelateRuns returns a table of all prediction runs Spearman correlated to
// each other over per-example correctness.
func CorrelateRuns(names []string, gold []data.Label, runs [][]data.Label) CorrelationTable {
	correctness := make([][]float64, len(runs))
	for index, preds := range runs {
		correctness[index] = Correctness(gold, preds)
	}
	result := CorrelationTable{}
	for indexA, nameA := range names {
		row := []RunCorrelation{}
		for indexB, nameB := range names {
			spearman, _ := onlinestats.Spearman(correctness[indexA], correctness[indexB])
			row = append(row, RunCorrelation{
				RunA:  nameA,
				RunB:  nameB,
				Score: math.Abs(spearman),
			})
		}
		result = append(result, row)
	}
	return result
}
