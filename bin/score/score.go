// Copyright 2025 The MD-Agreement Authors. All Rights Reserved.
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

// score computes micro and per-class F1 over prediction runs, optionally
// grouped by taxonomy category or subtype, and aggregates mean and standard
// deviation across runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/crowdlabel/mdagreement/data"
	"github.com/crowdlabel/mdagreement/metrics"
	"github.com/crowdlabel/mdagreement/progress"
	"github.com/crowdlabel/mdagreement/worker"
)

type runResult struct {
	name   string
	preds  []data.Label
	scores map[string]metrics.GroupScores
}

func score(testTSV, predGlob string, groupBy metrics.GroupBy, outJSON string, workers int, correlate, failFast bool) error {
	testRows, err := data.ReadTSV(testTSV)
	if err != nil {
		return err
	}
	gold := make([]data.Label, len(testRows))
	for index, row := range testRows {
		gold[index] = row.Offensive
	}
	groups := metrics.Groups(testRows, groupBy)

	predPaths, err := filepath.Glob(predGlob)
	if err != nil {
		return err
	}
	if len(predPaths) == 0 {
		return fmt.Errorf("no prediction files match %q", predGlob)
	}
	sort.Strings(predPaths)

	bar := progress.New("Scoring")
	pool := worker.Pool[runResult]{
		Workers:  workers,
		OnChange: bar.Update,
		FailFast: failFast,
	}
	for _, loopPath := range predPaths {
		path := loopPath
		pool.Submit(func(f func(runResult)) error {
			preds, err := metrics.ReadPredictions(path, len(gold))
			if err != nil {
				return err
			}
			f(runResult{
				name:   filepath.Base(path),
				preds:  preds,
				scores: metrics.ScoreRun(gold, preds, groups),
			})
			return nil
		})
	}
	if err := pool.Error(); err != nil {
		return err
	}
	bar.Finish()

	results := pool.Results()
	sort.Slice(results, func(i, j int) bool {
		return results[i].name < results[j].name
	})
	runs := make([]map[string]metrics.GroupScores, len(results))
	for index, result := range results {
		runs[index] = result.scores
	}
	aggregated, err := metrics.AggregateRuns(runs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outJSON), 0755); err != nil && !os.IsExist(err) {
		return err
	}
	b, err := json.MarshalIndent(aggregated, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outJSON, append(b, '\n'), 0644); err != nil {
		return err
	}
	log.Printf("wrote %v", outJSON)

	if correlate && len(results) > 1 {
		names := make([]string, len(results))
		predRuns := make([][]data.Label, len(results))
		for index, result := range results {
			names[index] = result.name
			predRuns[index] = result.preds
		}
		fmt.Println(metrics.CorrelateRuns(names, gold, predRuns))
	}
	return nil
}

func main() {
	testTSV := flag.String("test_tsv", "", "Canonical test split to score against.")
	predGlob := flag.String("pred_glob", "", "Glob matching prediction files, one label per line.")
	groupBy := flag.String("group_by", string(metrics.GroupByNone), "Aggregate metrics per group: category, subtype, or none.")
	outJSON := flag.String("out_json", "", "Output JSON path for the aggregated scores.")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers scoring runs.")
	correlate := flag.Bool("correlate", false, "Whether to print the pairwise run correlation table.")
	failFast := flag.Bool("fail_fast", false, "Whether to exit immediately at the first error.")
	flag.Parse()

	if *testTSV == "" || *predGlob == "" || *outJSON == "" {
		flag.Usage()
		os.Exit(1)
	}
	parsedGroupBy, err := metrics.ParseGroupBy(*groupBy)
	if err != nil {
		log.Fatal(err)
	}

	if err := score(*testTSV, *predGlob, parsedGroupBy, *outJSON, *workers, *correlate, *failFast); err != nil {
		log.Fatal(err)
	}
}
