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

// Package progress paints a very simple progress bar on the screen.
package progress

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const barWidth = 40

// New returns a new progress bar.
func New(name string) *Bar {
	return &Bar{
		name:    name,
		started: time.Now(),
	}
}

// Bar contains state for a progress bar.
type Bar struct {
	name      string
	started   time.Time
	submitted int
	completed int
	errors    int
}

// Update renders the bar. The signature matches worker.ChangeHandler so the
// bar can be plugged straight into a pool.
func (b *Bar) Update(submitted, completed, errors int) {
	b.submitted, b.completed, b.errors = submitted, completed, errors
	done := 0
	if submitted > 0 {
		done = barWidth * completed / submitted
	}
	suffix := ""
	if errors > 0 {
		suffix = fmt.Sprintf(" %v errors", errors)
	}
	fmt.Fprintf(os.Stderr, "\r%s, %d/%d [%s%s]%s", b.name, completed, submitted,
		strings.Repeat("#", done), strings.Repeat(" ", barWidth-done), suffix)
}

// Finish renders the last state of the bar and moves to the next line.
func (b *Bar) Finish() {
	b.Update(b.submitted, b.submitted, b.errors)
	fmt.Fprintf(os.Stderr, " %s\n", time.Since(b.started).Round(time.Millisecond))
}
