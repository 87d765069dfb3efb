package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// selectSalesQuery collapses versioned sale rows to their latest state.
const selectSalesQuery = `
SELECT
	sale_id,
	argMax(network, updated_at) AS network,
	argMax(treasury_address, updated_at) AS treasury_address,
	argMax(unit_price, updated_at) AS unit_price,
	argMax(supply_total, updated_at) AS supply_total,
	argMax(per_address_cap, updated_at) AS per_address_cap,
	argMax(pow_difficulty, updated_at) AS pow_difficulty,
	argMax(finality_depth, updated_at) AS finality_depth,
	argMax(fallback_mode, updated_at) AS fallback_mode,
	argMax(status, updated_at) AS status,
	argMax(merkle_root, updated_at) AS merkle_root,
	argMax(commit_txid, updated_at) AS commit_txid,
	argMax(finalized_at, updated_at) AS finalized_at,
	min(created_at) AS created_at,
	max(updated_at) AS updated_at
FROM raffle_sales`

func scanSale(rows driver.Rows) (model.Sale, error) {
	var (
		sale     model.Sale
		fallback uint8
		status   string
	)
	if err := rows.Scan(
		&sale.ID,
		&sale.Network,
		&sale.TreasuryAddress,
		&sale.UnitPrice,
		&sale.SupplyTotal,
		&sale.PerAddressCap,
		&sale.PowDifficulty,
		&sale.FinalityDepth,
		&fallback,
		&status,
		&sale.MerkleRoot,
		&sale.CommitTxID,
		&sale.FinalizedAt,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	); err != nil {
		return model.Sale{}, err
	}
	sale.FallbackMode = fallback != 0
	sale.Status = model.SaleStatus(status)
	return sale, nil
}

// insertSaleVersion appends a fresh row version for the sale. Reads collapse
// to the row with the highest updated_at.
func (r *Repository) insertSaleVersion(ctx context.Context, sale model.Sale, updatedAt time.Time) error {
	const query = `
INSERT INTO raffle_sales (
	sale_id,
	network,
	treasury_address,
	unit_price,
	supply_total,
	per_address_cap,
	pow_difficulty,
	finality_depth,
	fallback_mode,
	status,
	merkle_root,
	commit_txid,
	finalized_at,
	created_at,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare sale batch: %w", err)
	}

	fallback := uint8(0)
	if sale.FallbackMode {
		fallback = 1
	}

	if err := batch.Append(
		sale.ID,
		sale.Network,
		sale.TreasuryAddress,
		sale.UnitPrice,
		sale.SupplyTotal,
		sale.PerAddressCap,
		sale.PowDifficulty,
		sale.FinalityDepth,
		fallback,
		string(sale.Status),
		sale.MerkleRoot,
		sale.CommitTxID,
		sale.FinalizedAt,
		sale.CreatedAt,
		updatedAt,
	); err != nil {
		return fmt.Errorf("append sale: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}
