package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// UpdateAttemptAcceptance appends a fresh acceptance state row for one
// attempt. Rank columns live in their own table, so a concurrent rank write
// is never lost.
func (r *Repository) UpdateAttemptAcceptance(ctx context.Context, attempt model.PurchaseAttempt) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_attempt_acceptance", err, start)
	}()

	const query = `
INSERT INTO raffle_attempt_acceptance (
	sale_id,
	txid,
	accepted,
	accepting_block,
	has_finality_weight,
	finality_weight,
	confirmations,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare acceptance batch: %w", err)
	}

	accepted := uint8(0)
	if attempt.Accepted {
		accepted = 1
	}
	hasWeight := uint8(0)
	weight := uint64(0)
	if attempt.FinalityWeight != nil {
		hasWeight = 1
		weight = *attempt.FinalityWeight
	}

	if err = batch.Append(
		attempt.SaleID,
		attempt.TxID,
		accepted,
		attempt.AcceptingBlock,
		hasWeight,
		weight,
		attempt.Confirmations,
		start.UTC(),
	); err != nil {
		return fmt.Errorf("append acceptance: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert acceptance: %w", err)
	}
	return nil
}
