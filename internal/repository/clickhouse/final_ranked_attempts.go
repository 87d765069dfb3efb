package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// FinalRankedAttempts returns attempts holding a final rank, ordered by final
// rank ascending.
func (r *Repository) FinalRankedAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("final_ranked_attempts", err, start)
	}()

	const query = selectAttemptsQuery + `
WHERE rk.has_final = 1
ORDER BY rk.final_rank ASC`

	rows, err := r.conn.Query(ctx, query, saleID, saleID, saleID)
	if err != nil {
		return nil, fmt.Errorf("query final ranked attempts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	attempts, err := collectAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan final ranked attempts: %w", err)
	}
	return attempts, nil
}
