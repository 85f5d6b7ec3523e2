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
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCorpus(t *testing.T) {
	corpus, err := OpenCorpus(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer corpus.Close()

	rows := []*Row{
		{Text: "first", Offensive: OFF, Tier: AHigh, TierLabel: "A+_OFF", Category: "Subjectivity"},
		{Text: "second", Offensive: NOT, Tier: AFull, TierLabel: "A++_NOT"},
	}
	if err := corpus.PutSplit(Train, rows); err != nil {
		t.Fatal(err)
	}
	if err := corpus.PutSplit(Dev, rows[:1]); err != nil {
		t.Fatal(err)
	}

	got := []*Row{}
	if err := corpus.EachRow(Train, func(row *Row) error {
		got = append(got, row)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("train rows mismatch (-want +got):\n%s", diff)
	}

	count, err := corpus.Count(Dev)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("got %v dev rows, wanted 1", count)
	}

	// Replacing a split drops its previous rows.
	if err := corpus.PutSplit(Train, rows[1:]); err != nil {
		t.Fatal(err)
	}
	if count, err = corpus.Count(Train); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("got %v train rows after replacement, wanted 1", count)
	}

	// io.EOF stops the iteration early without an error.
	seen := 0
	if err := corpus.EachRow(Dev, func(row *Row) error {
		seen++
		return io.EOF
	}); err != nil {
		t.Fatal(err)
	}
	if seen != 1 {
		t.Errorf("got %v rows before stopping, wanted 1", seen)
	}
}
