// Package fanout provides the concurrent join used by library reads:
// issue every call at once, then either collect all results in input order
// or fail with the first error.
package fanout

import (
	"context"
	"sync"
)

// JoinAll runs fn(ctx, i) for every index 0..n-1 concurrently and waits for
// a definitive outcome: all successes, returned in input order, or the first
// error encountered. On the first error the shared context is cancelled so
// in-flight calls can abort early; their results are discarded either way.
//
// A partial result is never returned. Callers that want partial-success
// semantics need a different combinator; the library read deliberately
// degrades the whole response when any single call fails.
func JoinAll[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if n == 0 {
		return []T{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]T, n)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := fn(ctx, i)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
