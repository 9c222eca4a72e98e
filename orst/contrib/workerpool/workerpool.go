// Copyright 2025 The go-orst Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for sorting disjoint
// ranges of one sequence concurrently. The pool is created once and reused
// across many sorts, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    orst.SortWith(batch, orst.ParallelQuickSort{Pool: pool})
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once by New and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once

	// mu orders Close against in-flight sends on workC.
	mu     sync.RWMutex
	closed bool
}

// task is one worker's share of a ForEach call.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 the pool
// uses GOMAXPROCS workers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work completes. Calling Close more
// than once is safe, as is calling it while ForEach runs on another
// goroutine. A closed pool runs ForEach on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.workC)
		p.mu.Unlock()
	})
}

// ForEach calls fn(i) for every i in [0, n) and blocks until all calls
// return. Workers claim indices one at a time, so long-running items do not
// hold up the rest.
//
// fn must not call ForEach on the same pool.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		p.forEachSequential(n, fn)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		p.forEachSequential(n, fn)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	// Queued tasks still run after Close: workers drain workC before exiting.
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}

func (p *Pool) forEachSequential(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}
