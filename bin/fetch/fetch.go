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

// fetch downloads the raw annotated exports linked from a dataset index page.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/crowdlabel/mdagreement/progress"
	"github.com/crowdlabel/mdagreement/worker"
)

func download(u *url.URL, dest string) error {
	res, err := http.Get(u.String())
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return fmt.Errorf("status code error for %q: %d %s", u.String(), res.StatusCode, res.Status)
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, res.Body); err != nil {
		return fmt.Errorf("downloading %q to %q: %v", u.String(), dest, err)
	}
	return nil
}

func populate(index string, dest string, workers int) error {
	if err := os.MkdirAll(dest, 0755); err != nil && !os.IsExist(err) {
		return err
	}

	rootURL, err := url.Parse(index)
	if err != nil {
		return err
	}
	res, err := http.Get(rootURL.String())
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return err
	}

	bar := progress.New("Downloading")
	pool := worker.Pool[string]{
		Workers:  workers,
		OnChange: bar.Update,
	}
	seen := map[string]bool{}
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		u, parseErr := rootURL.Parse(sel.AttrOr("href", ""))
		if parseErr != nil {
			err = parseErr
			return
		}
		switch strings.ToLower(filepath.Ext(u.Path)) {
		case ".csv", ".tsv":
		default:
			return
		}
		name := filepath.Base(u.Path)
		if seen[name] {
			return
		}
		seen[name] = true
		pool.Submit(func(f func(string)) error {
			if err := download(u, filepath.Join(dest, name)); err != nil {
				return err
			}
			f(name)
			return nil
		})
	})
	if err != nil {
		return err
	}
	if err := pool.Error(); err != nil {
		return err
	}
	bar.Finish()
	for _, name := range pool.Results() {
		log.Printf("fetched %v", name)
	}
	if len(pool.Results()) == 0 {
		return fmt.Errorf("no CSV or TSV links found at %q", index)
	}
	return nil
}

func main() {
	index := flag.String("index", "", "URL of the dataset index page linking the raw CSV/TSV exports.")
	destination := flag.String("dest", "", "Destination directory.")
	workers := flag.Int("workers", 4, "Number of workers downloading exports.")
	flag.Parse()
	if *index == "" || *destination == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := populate(*index, *destination, *workers); err != nil {
		log.Fatal(err)
	}
}
