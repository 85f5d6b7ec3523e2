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
	"regexp"
	"strings"
)

const (
	// Train is the canonical name of the training split.
	Train = "train"
	// Dev is the canonical name of the development split.
	Dev = "dev"
	// Test is the canonical name of the test split.
	Test = "test"
)

// Splits lists the canonical split names in processing order.
var Splits = []string{Train, Dev, Test}

var leadingDigits = regexp.MustCompile(`^(\d+)`)

var splitAliases = map[string]string{
	"training":    Train,
	"trainset":    Train,
	"development": Dev,
	"devset":      Dev,
	"validation":  Dev,
	"val":         Dev,
	"testing":     Test,
}

// NormalizeSplit maps the split spellings used by the raw exports to
// train/dev/test. Anything unrecognized maps to the empty string.
func NormalizeSplit(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}
	if mapped, found := splitAliases[normalized]; found {
		return mapped
	}
	switch normalized {
	case Train, Dev, Test:
		return normalized
	}
	return ""
}

// ParseIdentifier parses a raw example identifier like `12345_train` into its
// numeric base and the split name embedded in its suffix, if any.
func ParseIdentifier(raw string) (base, split string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ""
	}
	base = text
	if match := leadingDigits.FindStringSubmatch(text); match != nil {
		base = match[1]
	}
	for _, separator := range []string{"_", "-"} {
		if index := strings.LastIndex(text, separator); index != -1 {
			if split = NormalizeSplit(text[index+1:]); split != "" {
				break
			}
		}
	}
	return base, split
}
