// Package parallel provides the worker partitioning used by the loop engine
// and the linear algebra routines.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// PerItem returns a config that schedules every index as its own task on up
// to NumCPU workers, regardless of how few items there are.
func PerItem() Config {
	return Config{
		Enabled:      true,
		NumWorkers:   runtime.NumCPU(),
		MinChunkSize: 1,
	}
}

func (cfg Config) workers() int {
	if cfg.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return cfg.NumWorkers
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.workers()-1)/cfg.workers(), cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForBatch optimized for rows*cols iteration pattern, e.g. one task per
// output cell of a matrix product.
func ForBatch(rows, cols int, f func(r, c int), cfg Config) {
	n := rows * cols
	if n == 0 {
		return
	}
	For(n, func(k int) {
		f(k/cols, k%cols)
	}, cfg)
}

// ForErr executes f(i) for i in [0, n), one task per index, with at most
// cfg.NumWorkers running at once. It blocks until every started task has
// returned and reports the first error. After a failure, tasks that have not
// started yet are skipped. Sequential when parallelism is disabled or n is
// below MinChunkSize; then it stops at the first error.
func ForErr(ctx context.Context, n int, f func(i int) error, cfg Config) error {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(i)
		})
	}
	return g.Wait()
}
