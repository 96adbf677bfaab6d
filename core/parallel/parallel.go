// Package parallel provides chunked parallel iteration for the per-feature
// searches inside the weak trainers.
//
// Workers receive disjoint index ranges over read-only shared inputs and
// write results into caller-owned per-index slots. Reductions over those
// slots happen serially in index order, so parallel execution never changes
// tie-break outcomes or final numerics.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) across up to NumCPU workers and calls fn
// with each worker's half-open range.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items does not exceed threshold, avoiding goroutine overhead on small
// inputs.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
