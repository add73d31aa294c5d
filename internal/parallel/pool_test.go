package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

func TestPool_QueueSizeIndependentOfWorkers(t *testing.T) {
	for _, n := range []int{1, 4, 256} {
		pool := NewPool(n)
		for i, q := range pool.queues {
			if cap(q) != queueSize {
				t.Errorf("NewPool(%d) queue %d cap = %d, want %d", n, i, cap(q), queueSize)
			}
		}
		pool.Close()
	}
}

func TestPool_RunMoreJobsThanQueueCapacity(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	n := queueSize * 10
	var count atomic.Int64
	pool.Run(n, func(int) { count.Add(1) })
	if got := count.Load(); got != int64(n) {
		t.Errorf("ran %d jobs, want %d", got, n)
	}
}

// =============================================================================
// Run Tests
// =============================================================================

func TestPool_RunCallsEveryIndexOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const n = 1000
	counts := make([]atomic.Int32, n)

	pool.Run(n, func(i int) {
		counts[i].Add(1)
	})

	for i := range counts {
		if c := counts[i].Load(); c != 1 {
			t.Fatalf("index %d ran %d times, want 1", i, c)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	called := false
	pool.Run(0, func(int) { called = true })
	pool.Run(-1, func(int) { called = true })

	if called {
		t.Error("Run with n <= 0 should not call fn")
	}
}

func TestPool_RunUnevenJobs(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var total atomic.Int64
	pool.Run(64, func(i int) {
		// Job cost grows with the index so stealing has something to do.
		s := 0
		for k := 0; k < i*1000; k++ {
			s += k & 1
		}
		total.Add(int64(s))
	})

	var want int64
	for i := range 64 {
		want += int64(i * 1000 / 2)
	}
	if total.Load() != want {
		t.Errorf("total = %d, want %d", total.Load(), want)
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var count atomic.Int32
	pool.Run(10, func(int) { count.Add(1) })

	if count.Load() != 10 {
		t.Errorf("Run on closed pool executed %d jobs, want 10", count.Load())
	}
}

func TestPool_ConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	var count atomic.Int64
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Run(100, func(int) { count.Add(1) })
		}()
	}
	wg.Wait()

	if count.Load() != 800 {
		t.Errorf("count = %d, want 800", count.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}
