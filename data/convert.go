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
	"strings"
)

// ConvertOptions configures the conversion of one raw export split into
// canonical rows.
type ConvertOptions struct {
	// IDColumn is the column holding the example identifier.
	IDColumn string
	// TextColumn is the column holding the example text.
	TextColumn string
	// GoldColumn optionally holds either a pre-computed OFF/NOT label or a
	// packed sequence of all annotator votes.
	GoldColumn string
	// TierColumn optionally holds a pre-computed agreement tier.
	TierColumn string
	// AnnotatorColumns optionally name one column per annotator vote.
	AnnotatorColumns []string
	// AnnotationsField optionally names a column packing all annotator votes.
	AnnotationsField string
	// PreferTaxonomyTier makes taxonomy agreement tiers win over everything
	// the raw export carries.
	PreferTaxonomyTier bool
	// ExpectedSplit skips rows whose identifier carries a contradicting
	// split suffix.
	ExpectedSplit string
}

// ConvertSplit reads a raw export split and returns its canonical rows.
// The offensiveness label comes from the gold column when present, otherwise
// from tallying annotator votes. The agreement tier follows the precedence
// taxonomy > tier column > gold-derived > vote-derived.
func ConvertSplit(path string, taxonomy Taxonomy, opts ConvertOptions) ([]*Row, error) {
	expectedSplit := NormalizeSplit(opts.ExpectedSplit)
	rows := []*Row{}
	err := EachRecord(path, func(record Record) error {
		id, rowSplit := ParseIdentifier(record[opts.IDColumn])
		if expectedSplit != "" {
			if rowSplit != "" && rowSplit != expectedSplit {
				return nil
			}
			if rowSplit == "" {
				rowSplit = expectedSplit
			}
		}

		votes, err := CollectVotes(record, opts.AnnotatorColumns, opts.AnnotationsField)
		if err != nil {
			return err
		}
		var derivedLabel Label
		var derivedTier Agreement
		if len(votes) > 0 {
			if derivedLabel, derivedTier, err = MajorityVote(votes); err != nil {
				return err
			}
		}

		var offensive Label
		var goldTier Agreement
		if opts.GoldColumn != "" && strings.TrimSpace(record[opts.GoldColumn]) != "" {
			raw := strings.TrimSpace(record[opts.GoldColumn])
			goldVotes, err := ParseAnnotationSequence(raw)
			if err != nil {
				return err
			}
			if len(goldVotes) > 0 {
				if offensive, goldTier, err = MajorityVote(goldVotes); err != nil {
					return fmt.Errorf("gold column %q of record %v: %v", opts.GoldColumn, record, err)
				}
				if len(votes) == 0 {
					derivedLabel, derivedTier = offensive, goldTier
				}
			} else if offensive, err = ParseLabel(raw); err != nil {
				return err
			}
		}
		if offensive == "" {
			offensive = derivedLabel
		}
		if offensive == "" {
			return fmt.Errorf("record %v has neither gold nor annotator labels", record)
		}

		info, _ := taxonomy.Lookup(id, rowSplit)
		tier := Agreement("")
		switch {
		case opts.PreferTaxonomyTier && info.Tier != "":
			tier = Agreement(info.Tier)
		case opts.TierColumn != "" && strings.TrimSpace(record[opts.TierColumn]) != "":
			tier = Agreement(strings.TrimSpace(record[opts.TierColumn]))
		case goldTier != "":
			tier = goldTier
		case derivedTier != "":
			tier = derivedTier
		}
		tierLabel := ""
		if tier != "" {
			tierLabel = fmt.Sprintf("%v_%v", tier, offensive)
		}

		rows = append(rows, &Row{
			Text:              strings.TrimSpace(strings.ReplaceAll(record[opts.TextColumn], "\n", " ")),
			Offensive:         offensive,
			Tier:              tier,
			TierLabel:         tierLabel,
			Category:          info.Category,
			Subtype:           info.Subtype,
			SecondaryCategory: info.SecondaryCategory,
			SecondarySubtype:  info.SecondarySubtype,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
