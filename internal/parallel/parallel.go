// Package parallel runs independent work items on a bounded set of
// goroutines.
//
// The training loop uses it to evaluate one graph per sample. Each item must
// only touch state it owns: graphs are not safe for concurrent use, so every
// goroutine builds its own.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Upper bound on worker goroutines.
	MinItems   int  // Below this many items, run sequentially.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   8, // One forward/backward per item is already heavy.
	}
}

// WithWorkers returns a config for n workers. n <= 0 selects DefaultConfig
// and n == 1 runs sequentially.
func WithWorkers(n int) Config {
	cfg := DefaultConfig()
	if n <= 0 {
		return cfg
	}
	cfg.NumWorkers = n
	cfg.Enabled = n > 1
	return cfg
}

func (c Config) workers(n int) int {
	if !c.Enabled || c.NumWorkers < 2 || n < c.MinItems {
		return 1
	}
	return min(c.NumWorkers, n)
}

// Map evaluates f(i) for i in [0, n) and returns the results in index order.
//
// Every item runs even if others fail. The returned error joins the errors
// of all failed items in index order; results of failed items are left as
// f returned them.
func Map[T any](n int, f func(i int) (T, error), cfg Config) ([]T, error) {
	out := make([]T, n)
	errs := make([]error, n)
	For(n, func(i int) {
		out[i], errs[i] = f(i)
	}, cfg)
	return out, errors.Join(errs...)
}

// For executes f(i) for i in [0, n). Workers claim the next index from a
// shared counter, so uneven items do not leave goroutines idle.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	w := cfg.workers(n)
	if w == 1 {
		for i := range n {
			f(i)
		}
		return
	}

	var (
		wg   sync.WaitGroup
		next atomic.Int64
	)
	for range w {
		wg.Go(func() {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		})
	}
	wg.Wait()
}
