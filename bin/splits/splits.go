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

// splits creates the filtered training variant directories for disagreement
// experiments.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/crowdlabel/mdagreement/splits"
)

func main() {
	baseDir := flag.String("base_dir", "data/md_agreement", "Directory with the canonical train/dev/test TSVs.")
	outRoot := flag.String("out_root", "data/splits", "Root directory for the variant directories.")
	flag.Parse()

	counts, err := splits.Materialize(*baseDir, *outRoot)
	if err != nil {
		log.Fatal(err)
	}
	names := []string{}
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%v train_size: %v\n", name, counts[name])
	}
}
