package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// UpdateAttemptRanks appends a fresh rank row for one attempt. A nil rank
// clears it.
func (r *Repository) UpdateAttemptRanks(ctx context.Context, saleID, txID string, provisional, final *uint32) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_attempt_ranks", err, start)
	}()

	const query = `
INSERT INTO raffle_attempt_ranks (
	sale_id,
	txid,
	has_provisional,
	provisional_rank,
	has_final,
	final_rank,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare ranks batch: %w", err)
	}

	hasProvisional := uint8(0)
	provisionalRank := uint32(0)
	if provisional != nil {
		hasProvisional = 1
		provisionalRank = *provisional
	}
	hasFinal := uint8(0)
	finalRank := uint32(0)
	if final != nil {
		hasFinal = 1
		finalRank = *final
	}

	if err = batch.Append(
		saleID,
		txID,
		hasProvisional,
		provisionalRank,
		hasFinal,
		finalRank,
		start.UTC(),
	); err != nil {
		return fmt.Errorf("append ranks: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert ranks: %w", err)
	}
	return nil
}
