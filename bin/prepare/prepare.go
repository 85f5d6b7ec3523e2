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

// prepare normalizes raw MD-Agreement exports into the canonical training TSVs.
//
// Example execution:
//
// prepare -train_csv raw/train.csv -dev_csv raw/dev.csv -test_csv raw/test.csv \
//
//	-taxonomy raw/Category_dataset.tsv -prefer_taxonomy_agr -outdir data/md_agreement
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/crowdlabel/mdagreement/data"
)

func populate(sources map[string]string, taxonomyPath, outDir string, opts data.ConvertOptions) error {
	taxonomy, err := data.LoadTaxonomy(taxonomyPath)
	if err != nil {
		return err
	}
	corpus, err := data.OpenCorpus(outDir)
	if err != nil {
		return err
	}
	defer corpus.Close()

	for _, split := range data.Splits {
		opts.ExpectedSplit = split
		rows, err := data.ConvertSplit(sources[split], taxonomy, opts)
		if err != nil {
			return err
		}
		if err := data.WriteTSV(filepath.Join(outDir, split+".tsv"), rows); err != nil {
			return err
		}
		if err := corpus.PutSplit(split, rows); err != nil {
			return err
		}
		count, err := corpus.Count(split)
		if err != nil {
			return err
		}
		log.Printf("%v: %v rows", split, count)
	}
	return nil
}

func main() {
	trainCSV := flag.String("train_csv", "", "Raw MD-Agreement train split.")
	devCSV := flag.String("dev_csv", "", "Raw MD-Agreement dev split.")
	testCSV := flag.String("test_csv", "", "Raw MD-Agreement test split.")
	taxonomyPath := flag.String("taxonomy", "", "Path to Category_dataset.tsv with the disagreement taxonomy annotations.")
	idColumn := flag.String("id_col", "ID", "Column containing the example identifier.")
	textColumn := flag.String("text_col", "Text", "Column containing the example text.")
	goldColumn := flag.String("gold_col", "Offensive_binary_label", "Column containing gold OFF/NOT labels, optional if deriving from annotators.")
	tierColumn := flag.String("agr_col", "Agreement_level", "Column containing agreement tiers (A++/A+/A0), optional.")
	annotatorColumns := flag.String("ann_cols", "", "Comma separated names of the five annotator columns to derive labels from.")
	annotationsField := flag.String("ann_field", "Individual_Annotations", "Column containing packed annotator labels, used when -ann_cols is empty.")
	preferTaxonomyTier := flag.Bool("prefer_taxonomy_agr", false, "Whether taxonomy agreement tiers win over the raw export.")
	outDir := flag.String("outdir", "data/md_agreement", "Destination directory for the canonical TSVs and the corpus database.")
	flag.Parse()

	if *trainCSV == "" || *devCSV == "" || *testCSV == "" {
		flag.Usage()
		os.Exit(1)
	}

	opts := data.ConvertOptions{
		IDColumn:           *idColumn,
		TextColumn:         *textColumn,
		GoldColumn:         *goldColumn,
		TierColumn:         *tierColumn,
		AnnotationsField:   *annotationsField,
		PreferTaxonomyTier: *preferTaxonomyTier,
	}
	if *annotatorColumns != "" {
		for _, column := range strings.Split(*annotatorColumns, ",") {
			opts.AnnotatorColumns = append(opts.AnnotatorColumns, strings.TrimSpace(column))
		}
	}
	sources := map[string]string{
		data.Train: *trainCSV,
		data.Dev:   *devCSV,
		data.Test:  *testCSV,
	}

	if err := populate(sources, *taxonomyPath, *outDir, opts); err != nil {
		log.Fatal(err)
	}
}
