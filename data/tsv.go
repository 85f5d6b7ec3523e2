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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteTSV writes canonical rows as headerless tab separated values, creating
// the parent directory if needed.
func WriteTSV(path string, rows []*Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil && !os.IsExist(err) {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	for _, row := range rows {
		if _, err := fmt.Fprintln(writer, strings.Join(row.Columns(), "\t")); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// ReadTSV reads canonical rows written by WriteTSV. Blank lines and lines
// without at least text and label columns are skipped.
func ReadTSV(path string) ([]*Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rows := []*Row{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if len(columns) < 2 {
			continue
		}
		rows = append(rows, RowFromColumns(columns))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %v", path, err)
	}
	return rows, nil
}
