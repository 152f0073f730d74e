// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the parallel
// intgemm drivers. A Pool is created once and reused across many
// PrepareA, PrepareB and Multiply calls, so each call pays only for handing out work,
// not for spawning goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, layer := range layers {
//	    kernel.ParallelMultiply(pool, act, layer.weights, rows, width, cols, cb)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe. A closed pool runs work on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// workersFor returns how many workers to use for n items, or 0 when the
// work should run on the calling goroutine.
func (p *Pool) workersFor(n int) int {
	if p.closed.Load() {
		return 0
	}
	workers := min(p.numWorkers, n)
	if workers <= 1 {
		return 0
	}
	return workers
}

// run hands fn(i) for i in [0, workers) to the pool and waits for all of
// them.
func (p *Pool) run(workers int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		p.workC <- workItem{
			fn:      func() { fn(i) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. Blocks until all ranges are done.
//
// Use it when items cost about the same, such as float registers in
// PrepareA.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := p.workersFor(n)
	if workers == 0 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.run(workers, func(i int) {
		start := i * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers taking
// the next index from a shared counter. Blocks until all items are done.
//
// Use it when items are few and coarse, such as the column strips of
// PrepareB.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workersFor(n)
	if workers == 0 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			idx := int(next.Add(1)) - 1
			if idx >= n {
				return
			}
			fn(idx)
		}
	})
}

// ParallelForAtomicBatched calls fn(start, end) for consecutive batches of
// batchSize indices covering [0, n). Workers take the next batch from a
// shared counter. Blocks until all batches are done.
//
// Batch boundaries ignore any grouping of the caller's indices, so fn may
// receive a range that crosses groups.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := p.workersFor(batches)
	if workers == 0 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			start := (int(next.Add(1)) - 1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
