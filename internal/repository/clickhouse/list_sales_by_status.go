package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// ListSalesByStatus returns every sale whose latest status matches.
func (r *Repository) ListSalesByStatus(ctx context.Context, status model.SaleStatus) ([]model.Sale, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_sales_by_status", err, start)
	}()

	const query = selectSalesQuery + `
GROUP BY sale_id
HAVING status = ?
ORDER BY sale_id ASC`

	rows, err := r.conn.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("query sales by status: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var sales []model.Sale
	for rows.Next() {
		sale, scanErr := scanSale(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan sale: %w", scanErr)
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	return sales, nil
}
