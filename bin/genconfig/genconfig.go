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

// genconfig emits the JSON training configurations.
//
// Either one config at a time:
//
// genconfig -split_dir data/splits/App -mode mtl3 -out configs/App.mtl3.json
//
// or a whole experiment grid from a YAML manifest:
//
// genconfig -manifest experiments.yaml
package main

import (
	"flag"
	"log"
	"os"

	"github.com/crowdlabel/mdagreement/config"
)

func main() {
	splitDir := flag.String("split_dir", "", "Directory with train/dev/test TSVs.")
	out := flag.String("out", "", "Output JSON path.")
	mode := flag.String("mode", string(config.Single), "Task setup: single, mtl3, or mtl6.")
	manifestPath := flag.String("manifest", "", "YAML manifest describing multiple configs to generate.")
	flag.Parse()

	if *manifestPath != "" {
		manifest, err := config.LoadManifest(*manifestPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := manifest.Generate(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %v configs", len(manifest.Configs))
		return
	}

	if *splitDir == "" || *out == "" {
		flag.Usage()
		os.Exit(1)
	}
	parsedMode, err := config.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.New(*splitDir, parsedMode).Write(*out); err != nil {
		log.Fatal(err)
	}
}
