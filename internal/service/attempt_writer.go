package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/pkg/batcher"
)

const (
	attemptBatcherCapacity      = 200
	attemptBatcherFlushInterval = 2 * time.Second
	attemptBatcherFlushesPerSec = 10
)

// AttemptWriter buffers newly discovered attempts and flushes them as
// duplicate-skipping batch inserts, decoupling ledger paging speed from
// store write size.
type AttemptWriter struct {
	store   Store
	logger  *zap.Logger
	batcher *batcher.Batcher[model.PurchaseAttempt]
}

func NewAttemptWriter(store Store, logger *zap.Logger) *AttemptWriter {
	w := &AttemptWriter{
		store:  store,
		logger: logger,
	}
	w.batcher = batcher.New[model.PurchaseAttempt](
		logger.Named("attemptBatcher"),
		w.flush,
		attemptBatcherCapacity,
		attemptBatcherFlushInterval,
		attemptBatcherFlushesPerSec,
	)
	return w
}

func (w *AttemptWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *AttemptWriter) Stop() {
	w.batcher.Stop()
}

func (w *AttemptWriter) Write(ctx context.Context, attempt model.PurchaseAttempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, attempt)
}

func (w *AttemptWriter) flush(ctx context.Context, attempts []model.PurchaseAttempt) error {
	inserted, err := w.store.InsertAttemptsSkipDuplicates(ctx, attempts)
	if err != nil {
		return err
	}
	if inserted > 0 {
		w.logger.Debug("attempts inserted", zap.Int("count", inserted))
	}
	return nil
}
