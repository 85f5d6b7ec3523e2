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

	"github.com/crowdlabel/mdagreement/data"
)

// GroupBy selects the taxonomy column examples are grouped by.
type GroupBy string

const (
	// GroupByNone scores all examples as one group.
	GroupByNone GroupBy = "none"
	// GroupByCategory groups examples by primary category.
	GroupByCategory GroupBy = "category"
	// GroupBySubtype groups examples by primary subtype.
	GroupBySubtype GroupBy = "subtype"
)

// AllGroup is the name of the group holding every example.
const AllGroup = "__ALL__"

// ParseGroupBy validates a group_by flag value.
func ParseGroupBy(raw string) (GroupBy, error) {
	switch GroupBy(raw) {
	case GroupByNone, GroupByCategory, GroupBySubtype:
		return GroupBy(raw), nil
	}
	return "", fmt.Errorf("unknown group_by %q, want one of %q, %q, or %q", raw, GroupByNone, GroupByCategory, GroupBySubtype)
}

// Groups returns the example indices per group name. Examples without a value
// in the grouping column belong to no group.
func Groups(rows []*data.Row, by GroupBy) map[string][]int {
	if by == GroupByNone {
		all := make([]int, len(rows))
		for index := range rows {
			all[index] = index
		}
		return map[string][]int{AllGroup: all}
	}
	groups := map[string][]int{}
	for index, row := range rows {
		key := row.Category
		if by == GroupBySubtype {
			key = row.Subtype
		}
		if key != "" {
			groups[key] = append(groups[key], index)
		}
	}
	return groups
}
