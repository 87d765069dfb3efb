package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// GetSale returns the latest state of one sale.
func (r *Repository) GetSale(ctx context.Context, saleID string) (*model.Sale, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_sale", err, start)
	}()

	const query = selectSalesQuery + `
WHERE sale_id = ?
GROUP BY sale_id`

	rows, err := r.conn.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("query sale: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = &model.NotFoundError{Kind: "sale", Key: saleID}
		return nil, err
	}

	sale, err := scanSale(rows)
	if err != nil {
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale: %w", err)
	}

	return &sale, nil
}
