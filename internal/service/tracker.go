package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/ledger"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/pkg/workerpool"
)

const (
	defaultTrackerBatchSize   = 100
	defaultTrackerSaleWorkers = 4
)

// TrackerConfig tunes the acceptance tracker. Zero values fall back to
// defaults.
type TrackerConfig struct {
	// BatchSize caps how many transaction ids go into one acceptance lookup.
	BatchSize int
	// SaleWorkers bounds concurrent per-sale work within one tick. Batches
	// inside a sale stay sequential to respect adapter rate limits.
	SaleWorkers int
}

// AcceptanceTracker refreshes acceptance status and confirmation depth for
// every attempt that has not reached finality yet.
type AcceptanceTracker struct {
	store   Store
	adapter LedgerAdapter
	metrics TrackerMetrics
	logger  *zap.Logger
	cfg     TrackerConfig
}

// NewAcceptanceTracker builds an AcceptanceTracker with dependencies.
func NewAcceptanceTracker(store Store, adapter LedgerAdapter, metrics TrackerMetrics, logger *zap.Logger, cfg TrackerConfig) (*AcceptanceTracker, error) {
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultTrackerBatchSize
	}
	if cfg.SaleWorkers <= 0 {
		cfg.SaleWorkers = defaultTrackerSaleWorkers
	}
	return &AcceptanceTracker{
		store:   store,
		adapter: adapter,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
	}, nil
}

// Track refreshes acceptance state for every given sale and returns one
// result per sale. A failure in one sale never blocks the others; per-batch
// failures are reported in that sale's result.
func (t *AcceptanceTracker) Track(ctx context.Context, sales []model.Sale) []TrackingResult {
	return workerpool.Collect(ctx, t.cfg.SaleWorkers, sales, t.trackSale)
}

func (t *AcceptanceTracker) trackSale(ctx context.Context, sale model.Sale) TrackingResult {
	started := time.Now()
	result := TrackingResult{SaleID: sale.ID}
	defer func() {
		t.metrics.ObserveTrack(sale.ID, result.Updated, result.NewlyAccepted, result.NewlyFinal, len(result.Errors), started)
	}()

	attempts, err := t.store.AttemptsBelowFinality(ctx, sale.ID, sale.FinalityDepth)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("select attempts: %v", err))
		return result
	}
	result.Checked = len(attempts)
	if len(attempts) == 0 {
		return result
	}

	for batchIdx, batch := range chunk(attempts, t.cfg.BatchSize) {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("batch %d: %v", batchIdx+1, ctx.Err()))
			return result
		}
		t.trackBatch(ctx, sale, batchIdx, batch, &result)
	}

	return result
}

func (t *AcceptanceTracker) trackBatch(ctx context.Context, sale model.Sale, batchIdx int, batch []model.PurchaseAttempt, result *TrackingResult) {
	txids := make([]string, len(batch))
	for i, a := range batch {
		txids[i] = a.TxID
	}

	acceptances, err := t.adapter.GetTransactionsAcceptance(ctx, txids)
	if err != nil {
		// The whole lookup failed; other batches still proceed.
		result.Errors = append(result.Errors, fmt.Sprintf("batch %d: acceptance lookup: %v", batchIdx+1, err))
		return
	}

	byTxID := make(map[string]ledger.Acceptance, len(acceptances))
	for _, acc := range acceptances {
		byTxID[acc.TxID] = acc
	}

	// Updates are applied row by row so a failure partway through the batch
	// never rolls back updates already written.
	for _, attempt := range batch {
		acc, ok := byTxID[attempt.TxID]
		if !ok {
			continue
		}

		changed := acc.Accepted != attempt.Accepted ||
			acc.AcceptingBlock != attempt.AcceptingBlock ||
			acc.Confirmations != attempt.Confirmations
		// An unresolved weight is retried every sweep the block stays
		// accepting, even when nothing else moved: a final rank taken with a
		// nil weight would not be reproducible from the ledger.
		missingWeight := acc.AcceptingBlock != "" && attempt.FinalityWeight == nil
		if !changed && !missingWeight {
			continue
		}

		weight := attempt.FinalityWeight
		if missingWeight || (acc.AcceptingBlock != "" && acc.AcceptingBlock != attempt.AcceptingBlock) {
			// Best effort: an unresolved block keeps the previous weight.
			details, blockErr := t.adapter.GetBlockDetails(ctx, acc.AcceptingBlock)
			if blockErr != nil {
				t.logger.Debug("accepting block lookup failed, keeping previous weight",
					zap.String("sale_id", sale.ID),
					zap.String("txid", attempt.TxID),
					zap.String("block", acc.AcceptingBlock),
					zap.Error(blockErr))
			} else if details != nil {
				blueScore := details.BlueScore
				weight = &blueScore
			}
		}
		if !changed && weight == nil {
			// The retry failed again; there is nothing new to write.
			continue
		}

		updated := attempt
		updated.Accepted = acc.Accepted
		updated.AcceptingBlock = acc.AcceptingBlock
		updated.Confirmations = acc.Confirmations
		updated.FinalityWeight = weight

		if err := t.store.UpdateAttemptAcceptance(ctx, updated); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("batch %d: update %s: %v", batchIdx+1, attempt.TxID, err))
			continue
		}

		result.Updated++
		if acc.Accepted && !attempt.Accepted {
			result.NewlyAccepted++
		}
		if acc.Accepted && acc.Confirmations >= sale.FinalityDepth && attempt.Confirmations < sale.FinalityDepth {
			result.NewlyFinal++
		}
	}
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{items}
	}
	var out [][]T
	for len(items) > size {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
