package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// CountAttemptsByStatus returns the attempt count per validation status.
func (r *Repository) CountAttemptsByStatus(ctx context.Context, saleID string) (map[model.ValidationStatus]uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_attempts_by_status", err, start)
	}()

	const query = `
SELECT validation_status, count() AS attempts
FROM (
	SELECT txid, anyLast(validation_status) AS validation_status
	FROM raffle_attempts
	WHERE sale_id = ?
	GROUP BY txid
)
GROUP BY validation_status`

	rows, err := r.conn.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("query attempt counts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	counts := make(map[model.ValidationStatus]uint64)
	for rows.Next() {
		var (
			status string
			count  uint64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan attempt count: %w", err)
		}
		counts[model.ValidationStatus(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempt counts: %w", err)
	}

	return counts, nil
}
