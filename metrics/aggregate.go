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

	"github.com/dgryski/go-onlinestats"
)

// Aggregate holds the mean and standard deviation of one metric across runs.
type Aggregate struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
}

func aggregate(values []float64) Aggregate {
	result := Aggregate{Mean: onlinestats.Mean(values)}
	if len(values) > 1 {
		result.StdDev = onlinestats.SampleStddev(values)
	}
	return result
}

// AggregateRuns averages per-group scores across prediction runs. Only groups
// present in every run are aggregated; a group missing from some run is an
// error since it means the runs scored different splits.
func AggregateRuns(runs []map[string]GroupScores) (map[string]map[string]Aggregate, error) {
	if len(runs) == 0 {
		return nil, fmt.Errorf("no prediction runs to aggregate")
	}
	result := map[string]map[string]Aggregate{}
	for name := range runs[0] {
		all := make([]float64, len(runs))
		off := make([]float64, len(runs))
		not := make([]float64, len(runs))
		for runIndex, run := range runs {
			scores, found := run[name]
			if !found {
				return nil, fmt.Errorf("group %q is missing from run %v", name, runIndex)
			}
			all[runIndex] = scores.All
			off[runIndex] = scores.Off
			not[runIndex] = scores.Not
		}
		result[name] = map[string]Aggregate{
			"ALL": aggregate(all),
			"OFF": aggregate(off),
			"NOT": aggregate(not),
		}
	}
	return result, nil
}
