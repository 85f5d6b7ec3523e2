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

import "testing"

func TestNormalizeSplit(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want string
	}{
		{raw: "train", want: Train},
		{raw: " Training ", want: Train},
		{raw: "trainset", want: Train},
		{raw: "dev", want: Dev},
		{raw: "validation", want: Dev},
		{raw: "val", want: Dev},
		{raw: "devset", want: Dev},
		{raw: "TESTING", want: Test},
		{raw: "test", want: Test},
		{raw: "evaluation", want: ""},
		{raw: "", want: ""},
	} {
		if got := NormalizeSplit(tc.raw); got != tc.want {
			t.Errorf("NormalizeSplit(%q) got %q, wanted %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	for _, tc := range []struct {
		raw       string
		wantBase  string
		wantSplit string
	}{
		{raw: "12345_train", wantBase: "12345", wantSplit: Train},
		{raw: "12345-dev", wantBase: "12345", wantSplit: Dev},
		{raw: "12345_validation", wantBase: "12345", wantSplit: Dev},
		{raw: "12345", wantBase: "12345", wantSplit: ""},
		{raw: "12345_extra_test", wantBase: "12345", wantSplit: Test},
		{raw: "tweet42", wantBase: "tweet42", wantSplit: ""},
		{raw: " 777_testing ", wantBase: "777", wantSplit: Test},
		{raw: "", wantBase: "", wantSplit: ""},
	} {
		base, split := ParseIdentifier(tc.raw)
		if base != tc.wantBase || split != tc.wantSplit {
			t.Errorf("ParseIdentifier(%q) got %q/%q, wanted %q/%q", tc.raw, base, split, tc.wantBase, tc.wantSplit)
		}
	}
}
