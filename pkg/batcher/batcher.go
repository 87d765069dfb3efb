// Package batcher provides a generic buffered batch writer with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher accumulates items and flushes them once the buffer reaches
// flushSize or flushInterval elapses, whichever comes first. Flushes are
// paced by a rate limiter so a bursty producer cannot overwhelm the sink.
type Batcher[T any] struct {
	logger        *zap.Logger
	flush         func(context.Context, []T) error
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter

	items chan T
	stop  chan struct{}
	wg    sync.WaitGroup
}

// New constructs a Batcher. flush receives the buffered items and its error
// is logged, not propagated; the buffer is dropped either way so a poison
// batch cannot wedge the writer.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, flushesPerSecond int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(flushesPerSecond),
		items:         make(chan T, flushSize*2),
		stop:          make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains the buffer with a final flush and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add enqueues an item. It fails once the batcher is stopped or the context
// is done.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	pending := make([]T, 0, b.flushSize)

	doFlush := func() {
		if len(pending) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, pending); err != nil {
			b.logger.Error("batch flush failed", zap.Int("size", len(pending)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(pending)))
		}
		pending = pending[:0]
	}

	for {
		select {
		case <-ctx.Done():
			doFlush()
			return
		case <-b.stop:
			// Drain anything queued behind the stop signal before the
			// final flush.
			for {
				select {
				case item := <-b.items:
					pending = append(pending, item)
					if len(pending) >= b.flushSize {
						doFlush()
					}
					continue
				default:
				}
				break
			}
			doFlush()
			return
		case item := <-b.items:
			pending = append(pending, item)
			if len(pending) >= b.flushSize {
				doFlush()
			}
		case <-ticker.C:
			doFlush()
		}
	}
}
