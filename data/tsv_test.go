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
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTSVRoundtrip(t *testing.T) {
	rows := []*Row{
		{
			Text:      "some text",
			Offensive: OFF,
			Tier:      ALow,
			TierLabel: "A0_OFF",
			Category:  "Ambiguity",
			Subtype:   "Slang",
		},
		{Text: "no taxonomy here", Offensive: NOT, Tier: AFull, TierLabel: "A++_NOT"},
	}
	path := filepath.Join(t.TempDir(), "splits", "train.tsv")
	if err := WriteTSV(path, rows); err != nil {
		t.Fatal(err)
	}
	got, err := ReadTSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}
