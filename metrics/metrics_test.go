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
	"math"
	"testing"

	"github.com/crowdlabel/mdagreement/data"
	"github.com/google/go-cmp/cmp"
)

const epsilon = 1e-9

func TestF1(t *testing.T) {
	gold := []data.Label{data.OFF, data.OFF, data.NOT, data.NOT}
	pred := []data.Label{data.OFF, data.NOT, data.NOT, data.NOT}
	for _, tc := range []struct {
		positive data.Label
		want     float64
	}{
		// OFF: 1 true positive, 1 false negative.
		{positive: data.OFF, want: 2.0 / 3.0},
		// NOT: 2 true positives, 1 false positive.
		{positive: data.NOT, want: 0.8},
	} {
		if got := F1(gold, pred, tc.positive); math.Abs(got-tc.want) > epsilon {
			t.Errorf("F1(%v) got %v, wanted %v", tc.positive, got, tc.want)
		}
	}
	if got := MicroF1(gold, pred); math.Abs(got-0.75) > epsilon {
		t.Errorf("MicroF1 got %v, wanted 0.75", got)
	}
}

func TestF1Empty(t *testing.T) {
	gold := []data.Label{data.NOT, data.NOT}
	pred := []data.Label{data.NOT, data.NOT}
	if got := F1(gold, pred, data.OFF); got != 0 {
		t.Errorf("F1 without any positives got %v, wanted 0", got)
	}
	if got := MicroF1(nil, nil); got != 0 {
		t.Errorf("MicroF1 of nothing got %v, wanted 0", got)
	}
}

func TestGroups(t *testing.T) {
	rows := []*data.Row{
		{Text: "a", Category: "Subjectivity", Subtype: "Sarcasm"},
		{Text: "b", Category: "Ambiguity", Subtype: ""},
		{Text: "c", Category: "Subjectivity", Subtype: "Irony"},
		{Text: "d", Category: "", Subtype: ""},
	}
	if diff := cmp.Diff(map[string][]int{AllGroup: {0, 1, 2, 3}}, Groups(rows, GroupByNone)); diff != "" {
		t.Errorf("ungrouped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string][]int{
		"Subjectivity": {0, 2},
		"Ambiguity":    {1},
	}, Groups(rows, GroupByCategory)); diff != "" {
		t.Errorf("category groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string][]int{
		"Sarcasm": {0},
		"Irony":   {2},
	}, Groups(rows, GroupBySubtype)); diff != "" {
		t.Errorf("subtype groups mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreRun(t *testing.T) {
	gold := []data.Label{data.OFF, data.NOT, data.OFF, data.NOT}
	preds := []data.Label{data.OFF, data.NOT, data.NOT, data.NOT}
	groups := map[string][]int{
		"perfect": {0, 1},
		"half":    {2, 3},
		"empty":   {},
	}
	got := ScoreRun(gold, preds, groups)
	if len(got) != 2 {
		t.Fatalf("got scores for %v groups, wanted 2", len(got))
	}
	if got["perfect"].All != 1 {
		t.Errorf("perfect group got ALL %v, wanted 1", got["perfect"].All)
	}
	if math.Abs(got["half"].All-0.5) > epsilon {
		t.Errorf("half group got ALL %v, wanted 0.5", got["half"].All)
	}
	if got["half"].Off != 0 {
		t.Errorf("half group got OFF %v, wanted 0", got["half"].Off)
	}
}

func TestAggregateRuns(t *testing.T) {
	runs := []map[string]GroupScores{
		{AllGroup: {All: 0.8, Off: 0.7, Not: 0.9}},
		{AllGroup: {All: 0.6, Off: 0.5, Not: 0.7}},
	}
	got, err := AggregateRuns(runs)
	if err != nil {
		t.Fatal(err)
	}
	all := got[AllGroup]["ALL"]
	if math.Abs(all.Mean-0.7) > epsilon {
		t.Errorf("got ALL mean %v, wanted 0.7", all.Mean)
	}
	// Sample standard deviation of {0.8, 0.6}.
	if math.Abs(all.StdDev-math.Sqrt(0.02)) > epsilon {
		t.Errorf("got ALL std %v, wanted %v", all.StdDev, math.Sqrt(0.02))
	}

	single, err := AggregateRuns(runs[:1])
	if err != nil {
		t.Fatal(err)
	}
	if single[AllGroup]["OFF"].StdDev != 0 {
		t.Errorf("got std %v for a single run, wanted 0", single[AllGroup]["OFF"].StdDev)
	}

	if _, err := AggregateRuns(nil); err == nil {
		t.Errorf("wanted an error for zero runs")
	}
	if _, err := AggregateRuns([]map[string]GroupScores{
		{AllGroup: {}},
		{"other": {}},
	}); err == nil {
		t.Errorf("wanted an error for runs with mismatched groups")
	}
}
