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

// Package data contains structs and methods common for annotated offensiveness datasets.
package data

import (
	"fmt"
	"strings"
)

const (
	// OFF marks a text the majority of annotators judged offensive.
	OFF Label = "OFF"
	// NOT marks a text the majority of annotators judged non-offensive.
	NOT Label = "NOT"
)

// Label is a binary offensiveness label.
type Label string

const (
	// AFull is unanimous agreement, 5 of 5 votes.
	AFull Agreement = "A++"
	// AHigh is 4 of 5 votes.
	AHigh Agreement = "A+"
	// ALow is 3 of 5 votes.
	ALow Agreement = "A0"
)

// Agreement is the annotator agreement tier of an example.
type Agreement string

// NumAnnotators is the number of annotators per example in MD-Agreement.
const NumAnnotators = 5

var labelAliases = map[string]Label{
	"off":           OFF,
	"offensive":     OFF,
	"1":             OFF,
	"true":          OFF,
	"toxic":         OFF,
	"not":           NOT,
	"non-offensive": NOT,
	"0":             NOT,
	"false":         NOT,
	"clean":         NOT,
	"none":          NOT,
}

// ParseLabel normalizes the spellings used by the raw exports to OFF/NOT.
func ParseLabel(raw string) (Label, error) {
	label, found := labelAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !found {
		return "", fmt.Errorf("unrecognized offensiveness label %q", raw)
	}
	return label, nil
}

// Row is one canonical example in the 8 column training format.
type Row struct {
	Text              string
	Offensive         Label
	Tier              Agreement
	TierLabel         string
	Category          string
	Subtype           string
	SecondaryCategory string
	SecondarySubtype  string
}

// NumColumns is the number of columns of the canonical format.
const NumColumns = 8

// Columns returns the canonical column values of the row.
func (r *Row) Columns() []string {
	return []string{
		r.Text,
		string(r.Offensive),
		string(r.Tier),
		r.TierLabel,
		r.Category,
		r.Subtype,
		r.SecondaryCategory,
		r.SecondarySubtype,
	}
}

// RowFromColumns builds a row from canonical column values, tolerating
// truncated rows.
func RowFromColumns(columns []string) *Row {
	padded := make([]string, NumColumns)
	copy(padded, columns)
	return &Row{
		Text:              padded[0],
		Offensive:         Label(padded[1]),
		Tier:              Agreement(padded[2]),
		TierLabel:         padded[3],
		Category:          padded[4],
		Subtype:           padded[5],
		SecondaryCategory: padded[6],
		SecondarySubtype:  padded[7],
	}
}
