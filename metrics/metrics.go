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

// Package metrics computes F1 scores over offensiveness predictions and
// aggregates them across prediction runs.
package metrics

import (
	"github.com/crowdlabel/mdagreement/data"
)

// ScoredLabels lists the labels the micro average runs over.
var ScoredLabels = []data.Label{data.OFF, data.NOT}

// F1 returns the F1 score treating positive as the positive class.
// Empty denominators score 0.
func F1(gold, pred []data.Label, positive data.Label) float64 {
	truePositives, falsePositives, falseNegatives := 0, 0, 0
	for index := range gold {
		switch {
		case pred[index] == positive && gold[index] == positive:
			truePositives++
		case pred[index] == positive:
			falsePositives++
		case gold[index] == positive:
			falseNegatives++
		}
	}
	denominator := 2*truePositives + falsePositives + falseNegatives
	if denominator == 0 {
		return 0
	}
	return 2 * float64(truePositives) / float64(denominator)
}

// MicroF1 returns the micro averaged F1 over the OFF and NOT labels.
func MicroF1(gold, pred []data.Label) float64 {
	truePositives, falsePositives, falseNegatives := 0, 0, 0
	scored := map[data.Label]bool{}
	for _, label := range ScoredLabels {
		scored[label] = true
	}
	for index := range gold {
		switch {
		case scored[pred[index]] && pred[index] == gold[index]:
			truePositives++
		default:
			if scored[pred[index]] {
				falsePositives++
			}
			if scored[gold[index]] {
				falseNegatives++
			}
		}
	}
	denominator := 2*truePositives + falsePositives + falseNegatives
	if denominator == 0 {
		return 0
	}
	return 2 * float64(truePositives) / float64(denominator)
}

// GroupScores holds the scores of one group of examples.
type GroupScores struct {
	All float64 `json:"ALL"`
	Off float64 `json:"OFF"`
	Not float64 `json:"NOT"`
}

// Score computes the micro and per-class F1 scores of aligned gold and
// predicted labels.
func Score(gold, pred []data.Label) GroupScores {
	return GroupScores{
		All: MicroF1(gold, pred),
		Off: F1(gold, pred, data.OFF),
		Not: F1(gold, pred, data.NOT),
	}
}
