package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// AttemptsBelowFinality returns attempts that are unaccepted or whose
// confirmation depth is below the sale's finality threshold.
func (r *Repository) AttemptsBelowFinality(ctx context.Context, saleID string, finalityDepth uint64) ([]model.PurchaseAttempt, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("attempts_below_finality", err, start)
	}()

	const query = selectAttemptsQuery + `
WHERE acc.accepted = 0 OR acc.confirmations < ?
ORDER BY a.txid ASC`

	rows, err := r.conn.Query(ctx, query, saleID, saleID, saleID, finalityDepth)
	if err != nil {
		return nil, fmt.Errorf("query attempts below finality: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	attempts, err := collectAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan attempts below finality: %w", err)
	}
	return attempts, nil
}
