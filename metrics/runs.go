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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/crowdlabel/mdagreement/data"
)

// ReadPredictions reads one predicted label per line and requires alignment
// with the gold split.
func ReadPredictions(path string, want int) ([]data.Label, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	preds := []data.Label{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		preds = append(preds, data.Label(strings.TrimSpace(scanner.Text())))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %v", path, err)
	}
	if len(preds) != want {
		return nil, fmt.Errorf("prediction length mismatch: %q has %v labels but gold has %v", path, len(preds), want)
	}
	return preds, nil
}

// ScoreRun scores one prediction run against the gold labels, once per group.
// Empty groups are left out.
func ScoreRun(gold, preds []data.Label, groups map[string][]int) map[string]GroupScores {
	result := map[string]GroupScores{}
	for name, indices := range groups {
		if len(indices) == 0 {
			continue
		}
		goldSubset := make([]data.Label, len(indices))
		predSubset := make([]data.Label, len(indices))
		for subsetIndex, index := range indices {
			goldSubset[subsetIndex] = gold[index]
			predSubset[subsetIndex] = preds[index]
		}
		result[name] = Score(goldSubset, predSubset)
	}
	return result
}
