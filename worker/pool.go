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

// Package worker contains functionality to parallelize tasks with a pool of workers.
package worker

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// ChangeHandler is updated when the worker pool increases the number of
// submitted, completed, or failed jobs.
type ChangeHandler func(submitted, completed, errors int)

// Pool runs submitted jobs on a fixed number of workers. Jobs may emit
// results and may submit further jobs.
type Pool[T any] struct {
	Workers  int
	OnChange ChangeHandler
	FailFast bool

	startOnce sync.Once
	jobs      chan func(func(T)) error
	waitGroup sync.WaitGroup

	mutex   sync.Mutex
	results []T
	errs    Errors

	submittedJobs atomic.Uint32
	completedJobs atomic.Uint32
	errorJobs     atomic.Uint32
}

func (p *Pool[T]) init() {
	p.startOnce.Do(func() {
		workers := p.Workers
		if workers < 1 {
			workers = 1
		}
		p.jobs = make(chan func(func(T)) error)
		for i := 0; i < workers; i++ {
			go func() {
				for job := range p.jobs {
					if err := job(p.emit); err != nil {
						if p.FailFast {
							log.Fatal(err)
						}
						p.mutex.Lock()
						p.errs = append(p.errs, err)
						p.mutex.Unlock()
						p.errorJobs.Add(1)
					}
					p.completedJobs.Add(1)
					p.change()
					p.waitGroup.Done()
				}
			}()
		}
	})
}

func (p *Pool[T]) emit(t T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.results = append(p.results, t)
}

func (p *Pool[T]) change() {
	if p.OnChange != nil {
		p.OnChange(int(p.submittedJobs.Load()), int(p.completedJobs.Load()), int(p.errorJobs.Load()))
	}
}

// Submit submits a job to the pool.
func (p *Pool[T]) Submit(job func(func(T)) error) {
	p.init()
	p.waitGroup.Add(1)
	p.submittedJobs.Add(1)
	p.change()
	go func() {
		p.jobs <- job
	}()
}

// Errors is a slice of errors.
type Errors []error

func (e Errors) Error() string {
	buf := &bytes.Buffer{}
	for _, err := range e {
		fmt.Fprintln(buf, err.Error())
	}
	return buf.String()
}

// Error waits for all submitted jobs to finish, closes the submission
// channel, and returns whether any of the jobs produced an error.
//
// Must be called after all jobs are added.
func (p *Pool[T]) Error() error {
	p.init()
	p.waitGroup.Wait()
	close(p.jobs)
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}

// Results returns all results emitted by the jobs, in completion order.
//
// Error() must be called before Results().
func (p *Pool[T]) Results() []T {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.results
}
