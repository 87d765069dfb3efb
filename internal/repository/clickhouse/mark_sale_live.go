package clickhouse

import (
	"context"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// MarkSaleLive moves a sale to the live status by inserting a fresh row
// version.
func (r *Repository) MarkSaleLive(ctx context.Context, saleID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_sale_live", err, start)
	}()

	sale, err := r.GetSale(ctx, saleID)
	if err != nil {
		return err
	}

	sale.Status = model.SaleLive
	err = r.insertSaleVersion(ctx, *sale, start.UTC())
	return err
}
