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

package worker

import (
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
)

func TestPoolResults(t *testing.T) {
	pool := Pool[int]{Workers: 4}
	for i := 0; i < 100; i++ {
		n := i
		pool.Submit(func(f func(int)) error {
			f(n * n)
			return nil
		})
	}
	if err := pool.Error(); err != nil {
		t.Fatal(err)
	}
	results := pool.Results()
	if len(results) != 100 {
		t.Fatalf("got %v results, wanted 100", len(results))
	}
	sort.Ints(results)
	for i, got := range results {
		if got != i*i {
			t.Errorf("result %v got %v, wanted %v", i, got, i*i)
		}
	}
}

func TestPoolErrors(t *testing.T) {
	pool := Pool[int]{Workers: 2}
	for i := 0; i < 10; i++ {
		n := i
		pool.Submit(func(func(int)) error {
			if n%2 == 0 {
				return fmt.Errorf("job %v failed", n)
			}
			return nil
		})
	}
	err := pool.Error()
	if err == nil {
		t.Fatal("wanted an error")
	}
	errs, ok := err.(Errors)
	if !ok {
		t.Fatalf("got %T, wanted worker.Errors", err)
	}
	if len(errs) != 5 {
		t.Errorf("got %v errors, wanted 5", len(errs))
	}
}

func TestPoolOnChange(t *testing.T) {
	var maxSubmitted, maxCompleted atomic.Int32
	storeMax := func(target *atomic.Int32, value int32) {
		for {
			current := target.Load()
			if value <= current || target.CompareAndSwap(current, value) {
				return
			}
		}
	}
	pool := Pool[int]{
		Workers: 2,
		OnChange: func(submitted, completed, errors int) {
			storeMax(&maxSubmitted, int32(submitted))
			storeMax(&maxCompleted, int32(completed))
		},
	}
	for i := 0; i < 10; i++ {
		pool.Submit(func(func(int)) error { return nil })
	}
	if err := pool.Error(); err != nil {
		t.Fatal(err)
	}
	if maxSubmitted.Load() != 10 || maxCompleted.Load() != 10 {
		t.Errorf("got %v/%v submitted/completed, wanted 10/10", maxSubmitted.Load(), maxCompleted.Load())
	}
}
