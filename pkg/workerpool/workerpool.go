// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Collect runs process over items with up to workerCount workers and returns
// one result per item, in input order. A failing item never cancels the
// others; partial failure belongs in the result type, which is what the
// per-sale sweep loops need.
//
// When the context is canceled remaining items are skipped and their results
// stay zero-valued.
func Collect[T, R any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) R) []R {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = process(ctx, items[i])
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return results
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
	return results
}
