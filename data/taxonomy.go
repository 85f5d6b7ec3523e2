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
	"os"
	"strings"
)

// TaxonomyInfo carries the disagreement taxonomy annotations of one example.
type TaxonomyInfo struct {
	Text              string
	Tier              string
	Category          string
	Subtype           string
	SecondaryCategory string
	SecondarySubtype  string
}

// TaxonomyKey identifies an example by its numeric base id and its split.
// Split is empty when the source identifier carried no split suffix.
type TaxonomyKey struct {
	ID    string
	Split string
}

// Taxonomy maps example identifiers to their taxonomy annotations.
type Taxonomy map[TaxonomyKey]TaxonomyInfo

// LoadTaxonomy loads Category_dataset.tsv. A missing or empty path yields an
// empty taxonomy. The misspelled column headers are the ones the published
// dataset actually uses.
func LoadTaxonomy(path string) (Taxonomy, error) {
	taxonomy := Taxonomy{}
	if path == "" {
		return taxonomy, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return taxonomy, nil
	} else if err != nil {
		return nil, err
	}
	err := EachRecord(path, func(record Record) error {
		base, split := ParseIdentifier(record["ID"])
		if base == "" {
			return nil
		}
		taxonomy[TaxonomyKey{ID: base, Split: split}] = TaxonomyInfo{
			Text:              strings.TrimSpace(record["Text"]),
			Tier:              strings.TrimSpace(record["Agreement_level"]),
			Category:          strings.TrimSpace(record["Primary_category"]),
			Subtype:           strings.TrimSpace(record["Primary_subcategry"]),
			SecondaryCategory: strings.TrimSpace(record["Secondary_category"]),
			SecondarySubtype:  strings.TrimSpace(record["Seconday_subcategory"]),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return taxonomy, nil
}

// Lookup finds the annotations for an example, preferring the split-specific
// entry and falling back to an entry without a split.
func (t Taxonomy) Lookup(id, split string) (TaxonomyInfo, bool) {
	if id == "" {
		return TaxonomyInfo{}, false
	}
	if info, found := t[TaxonomyKey{ID: id, Split: split}]; found {
		return info, true
	}
	if split != "" {
		info, found := t[TaxonomyKey{ID: id}]
		return info, found
	}
	return TaxonomyInfo{}, false
}
