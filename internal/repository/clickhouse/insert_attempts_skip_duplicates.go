package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// InsertAttemptsSkipDuplicates stores newly discovered attempts, skipping
// rows whose (sale_id, txid) already exists so re-scanning the same treasury
// window never duplicates an attempt. Returns the number of rows inserted.
func (r *Repository) InsertAttemptsSkipDuplicates(ctx context.Context, attempts []model.PurchaseAttempt) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_attempts_skip_duplicates", err, start)
	}()

	if len(attempts) == 0 {
		return 0, nil
	}

	bySale := make(map[string][]model.PurchaseAttempt)
	for _, attempt := range attempts {
		bySale[attempt.SaleID] = append(bySale[attempt.SaleID], attempt)
	}

	var fresh []model.PurchaseAttempt
	for saleID, saleAttempts := range bySale {
		txids := make([]string, 0, len(saleAttempts))
		for _, attempt := range saleAttempts {
			txids = append(txids, attempt.TxID)
		}

		existing, lookupErr := r.existingAttemptTxIDs(ctx, saleID, txids)
		if lookupErr != nil {
			err = lookupErr
			return 0, err
		}
		for _, attempt := range saleAttempts {
			if !existing[attempt.TxID] {
				fresh = append(fresh, attempt)
			}
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	const query = `
INSERT INTO raffle_attempts (
	sale_id,
	txid,
	payload,
	validation_status,
	amount_paid,
	buyer_id_hash,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare attempts batch: %w", err)
		return 0, err
	}

	for _, attempt := range fresh {
		if err = batch.Append(
			attempt.SaleID,
			attempt.TxID,
			attempt.Payload,
			string(attempt.ValidationStatus),
			attempt.AmountPaid,
			attempt.BuyerIDHash,
			attempt.CreatedAt,
		); err != nil {
			err = fmt.Errorf("append attempt: %w", err)
			return 0, err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert attempts: %w", err)
		return 0, err
	}
	return len(fresh), nil
}

func (r *Repository) existingAttemptTxIDs(ctx context.Context, saleID string, txids []string) (map[string]bool, error) {
	const query = `
SELECT DISTINCT txid
FROM raffle_attempts
WHERE sale_id = ? AND txid IN ?`

	rows, err := r.conn.Query(ctx, query, saleID, txids)
	if err != nil {
		return nil, fmt.Errorf("query existing attempts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	existing := make(map[string]bool)
	for rows.Next() {
		var txid string
		if err := rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan existing attempt: %w", err)
		}
		existing[txid] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate existing attempts: %w", err)
	}
	return existing, nil
}
