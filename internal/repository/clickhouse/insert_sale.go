package clickhouse

import (
	"context"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// InsertSale stores a newly created sale.
func (r *Repository) InsertSale(ctx context.Context, sale model.Sale) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_sale", err, start)
	}()

	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = start.UTC()
	}
	err = r.insertSaleVersion(ctx, sale, sale.CreatedAt)
	return err
}
