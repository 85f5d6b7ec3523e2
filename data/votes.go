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

package data

import (
	"fmt"
	"regexp"
	"strings"
)

var annotationSeparator = regexp.MustCompile(`[;,/\\|\s]+`)

// ParseAnnotationSequence parses separated annotator labels packed into a
// single field, e.g. `[OFF, NOT, NOT, OFF, NOT]`. A field holding fewer than
// two tokens is not a sequence and yields nil.
func ParseAnnotationSequence(raw string) ([]Label, error) {
	text := strings.TrimSpace(raw)
	text = strings.Trim(text, `[](){}"'`)
	if text == "" {
		return nil, nil
	}
	parts := []string{}
	for _, part := range annotationSeparator.Split(text, -1) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) <= 1 {
		return nil, nil
	}
	votes := make([]Label, 0, len(parts))
	for _, part := range parts {
		vote, err := ParseLabel(part)
		if err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}
	return votes, nil
}

// MajorityVote tallies annotator votes and returns the majority label and the
// agreement tier of the vote distribution.
func MajorityVote(votes []Label) (Label, Agreement, error) {
	if len(votes) != NumAnnotators {
		return "", "", fmt.Errorf("expected %v annotator votes, got %v", NumAnnotators, votes)
	}
	counts := map[Label]int{}
	for _, vote := range votes {
		counts[vote]++
	}
	majority := votes[0]
	for label, count := range counts {
		if count > counts[majority] {
			majority = label
		}
	}
	switch counts[majority] {
	case 5:
		return majority, AFull, nil
	case 4:
		return majority, AHigh, nil
	case 3:
		return majority, ALow, nil
	}
	return "", "", fmt.Errorf("unexpected vote distribution %v", counts)
}

// CollectVotes gathers annotator votes from a raw record, either from
// dedicated annotator columns (all of which must be present) or from a single
// packed annotations field.
func CollectVotes(record Record, annotatorColumns []string, annotationsField string) ([]Label, error) {
	if len(annotatorColumns) > 0 {
		votes := make([]Label, 0, len(annotatorColumns))
		for _, column := range annotatorColumns {
			value, found := record[column]
			if !found || strings.TrimSpace(value) == "" {
				return nil, fmt.Errorf("missing annotator column %q in record %v", column, record)
			}
			vote, err := ParseLabel(value)
			if err != nil {
				return nil, err
			}
			votes = append(votes, vote)
		}
		return votes, nil
	}
	if annotationsField != "" {
		return ParseAnnotationSequence(record[annotationsField])
	}
	return nil, nil
}
