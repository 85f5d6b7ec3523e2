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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// SniffDelimiter guesses whether a raw export is comma or tab separated by
// counting separators in the first 4KiB. Tabs win ties against commas.
func SniffDelimiter(path string) (rune, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	head := make([]byte, 4096)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return 0, err
	}
	text := string(head[:n])
	if tabs := strings.Count(text, "\t"); tabs > 0 && tabs >= strings.Count(text, ",") {
		return '\t', nil
	}
	return ',', nil
}

// Record is a header-keyed row of a raw export.
type Record map[string]string

// EachRecord reads a CSV or TSV file (delimiter sniffed from the content) and
// calls f with each data row keyed by the header row. Returning io.EOF from f
// stops the iteration early.
func EachRecord(path string, f func(Record) error) error {
	delimiter, err := SniffDelimiter(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header of %q: %v", path, err)
	}
	for {
		line, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %q: %v", path, err)
		}
		record := Record{}
		for index, column := range header {
			if index < len(line) {
				record[column] = line[index]
			}
		}
		if err := f(record); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}
