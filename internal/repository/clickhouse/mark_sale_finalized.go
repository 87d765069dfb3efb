package clickhouse

import (
	"context"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// MarkSaleFinalized records the on-chain commit transaction and completes the
// sale's state machine.
func (r *Repository) MarkSaleFinalized(ctx context.Context, saleID, commitTxID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_sale_finalized", err, start)
	}()

	sale, err := r.GetSale(ctx, saleID)
	if err != nil {
		return err
	}

	sale.Status = model.SaleFinalized
	sale.CommitTxID = commitTxID
	err = r.insertSaleVersion(ctx, *sale, start.UTC())
	return err
}
