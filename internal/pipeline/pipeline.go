// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
)

// Config controls the scoring pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEach fans items out to a worker pool, applies work, and streams
// kept outputs to the caller via visit on a single collector goroutine.
// It returns the number of kept outputs and the first error
// encountered (including context cancellation).
func ForEach[T any](
	ctx context.Context,
	cfg Config,
	items []string,
	work func(string) (T, bool),
	visit func(T) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan string, cfg.Threads*2)
	results := make(chan T, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-jobs:
					if !ok {
						return
					}
					out, keep := work(item)
					if !keep {
						continue
					}
					select {
					case results <- out:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr  error
		cwg   sync.WaitGroup
		total int
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for out := range results {
			if cerr != nil {
				continue
			}
			if err := visit(out); err != nil {
				cerr = err
				continue
			}
			total++
		}
	}()

	// Feed work
feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- item:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return total, ctx.Err()
	}
	return total, cerr
}
