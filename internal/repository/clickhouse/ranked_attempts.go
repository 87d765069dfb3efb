package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// RankedAttempts returns attempts currently holding a provisional or final
// rank.
func (r *Repository) RankedAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ranked_attempts", err, start)
	}()

	const query = selectAttemptsQuery + `
WHERE rk.has_provisional = 1 OR rk.has_final = 1
ORDER BY a.txid ASC`

	rows, err := r.conn.Query(ctx, query, saleID, saleID, saleID)
	if err != nil {
		return nil, fmt.Errorf("query ranked attempts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	attempts, err := collectAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan ranked attempts: %w", err)
	}
	return attempts, nil
}
