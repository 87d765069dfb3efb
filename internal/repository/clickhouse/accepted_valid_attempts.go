package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// AcceptedValidAttempts returns accepted attempts whose validation status
// admits them into the ordering.
func (r *Repository) AcceptedValidAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("accepted_valid_attempts", err, start)
	}()

	const query = selectAttemptsQuery + `
WHERE acc.accepted = 1 AND a.validation_status IN ('valid', 'valid_fallback')
ORDER BY a.txid ASC`

	rows, err := r.conn.Query(ctx, query, saleID, saleID, saleID)
	if err != nil {
		return nil, fmt.Errorf("query accepted valid attempts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	attempts, err := collectAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan accepted valid attempts: %w", err)
	}
	return attempts, nil
}
