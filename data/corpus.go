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
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // To open sqlite3-databases.
)

// Corpus is a sqlite backed archive of canonical rows, one record per
// example, keyed by split and insertion order.
type Corpus struct {
	dir string
	db  *sql.DB
}

// OpenCorpus opens the corpus database in a directory.
// If the corpus doesn't exist, it will be created.
func OpenCorpus(dir string) (*Corpus, error) {
	if err := os.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("trying to create %q: %v", dir, err)
	}
	dbPath := filepath.Join(dir, "corpus.sqlite3")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if _, err := os.Create(dbPath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("trying to open %q: %v", dbPath, err)
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS ROWS (SPLIT TEXT, ORD INTEGER, DATA BLOB, PRIMARY KEY (SPLIT, ORD))"); err != nil {
		return nil, fmt.Errorf("trying to ensure row table: %v", err)
	}
	return &Corpus{
		dir: dir,
		db:  db,
	}, nil
}

// Close closes the corpus.
func (c *Corpus) Close() error {
	return c.db.Close()
}

// PutSplit replaces the rows of a split.
func (c *Corpus) PutSplit(split string, rows []*Row) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	if err := func() error {
		if _, err := tx.Exec("DELETE FROM ROWS WHERE SPLIT = ?", split); err != nil {
			return err
		}
		for ord, row := range rows {
			b, err := json.Marshal(row)
			if err != nil {
				return err
			}
			if _, err := tx.Exec("INSERT INTO ROWS (SPLIT, ORD, DATA) VALUES (?, ?, ?)", split, ord, b); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return rerr
		}
		return err
	}
	return tx.Commit()
}

// EachRow calls f with each row of a split in insertion order. Returning
// io.EOF from f stops the iteration early.
func (c *Corpus) EachRow(split string, f func(*Row) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	rows, err := tx.Query("SELECT DATA FROM ROWS WHERE SPLIT = ? ORDER BY ORD", split)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return err
		}
		row := &Row{}
		if err := json.Unmarshal(value, row); err != nil {
			return err
		}
		if err := f(row); err == io.EOF {
			break
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows of a split.
func (c *Corpus) Count(split string) (int, error) {
	row := c.db.QueryRow("SELECT COUNT(*) FROM ROWS WHERE SPLIT = ?", split)
	count := 0
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
