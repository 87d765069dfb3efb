package clickhouse

import (
	"context"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// MarkSaleFinalizing freezes a sale: it stores the generated Merkle root and
// the freeze timestamp and moves the sale to the finalizing status.
func (r *Repository) MarkSaleFinalizing(ctx context.Context, saleID, merkleRoot string, finalizedAt time.Time) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_sale_finalizing", err, start)
	}()

	sale, err := r.GetSale(ctx, saleID)
	if err != nil {
		return err
	}

	sale.Status = model.SaleFinalizing
	sale.MerkleRoot = merkleRoot
	sale.FinalizedAt = &finalizedAt
	err = r.insertSaleVersion(ctx, *sale, start.UTC())
	return err
}
