package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	const items = 1000
	covered := make([]int32, items)

	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Fatalf("item %d visited %d times, want exactly once", i, c)
		}
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestParallelizeSingleItem(t *testing.T) {
	var count int32
	Parallelize(1, func(start, end int) {
		atomic.AddInt32(&count, int32(end-start))
	})
	if count != 1 {
		t.Errorf("expected 1 item processed, got %d", count)
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential path should get the full range, got [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path should invoke fn once, got %d", calls)
	}
}
