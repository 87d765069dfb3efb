package clickhouse

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// selectAttemptsQuery joins the latest acceptance state and the latest ranks
// onto deduplicated attempt rows. Attempts without an acceptance or rank row
// fall back to zero values, which read as unaccepted and unranked. The query
// binds the sale id three times, once per table.
const selectAttemptsQuery = `
SELECT
	a.sale_id,
	a.txid,
	a.payload,
	a.validation_status,
	a.amount_paid,
	a.buyer_id_hash,
	a.created_at,
	greatest(a.created_at, acc.acc_updated_at, rk.rank_updated_at) AS updated_at,
	acc.accepted,
	acc.accepting_block,
	acc.has_finality_weight,
	acc.finality_weight,
	acc.confirmations,
	rk.has_provisional,
	rk.provisional_rank,
	rk.has_final,
	rk.final_rank
FROM (
	SELECT
		sale_id,
		txid,
		anyLast(payload) AS payload,
		anyLast(validation_status) AS validation_status,
		anyLast(amount_paid) AS amount_paid,
		anyLast(buyer_id_hash) AS buyer_id_hash,
		min(created_at) AS created_at
	FROM raffle_attempts
	WHERE sale_id = ?
	GROUP BY sale_id, txid
) AS a
LEFT JOIN (
	SELECT
		sale_id,
		txid,
		argMax(accepted, updated_at) AS accepted,
		argMax(accepting_block, updated_at) AS accepting_block,
		argMax(has_finality_weight, updated_at) AS has_finality_weight,
		argMax(finality_weight, updated_at) AS finality_weight,
		argMax(confirmations, updated_at) AS confirmations,
		max(updated_at) AS acc_updated_at
	FROM raffle_attempt_acceptance
	WHERE sale_id = ?
	GROUP BY sale_id, txid
) AS acc USING (sale_id, txid)
LEFT JOIN (
	SELECT
		sale_id,
		txid,
		argMax(has_provisional, updated_at) AS has_provisional,
		argMax(provisional_rank, updated_at) AS provisional_rank,
		argMax(has_final, updated_at) AS has_final,
		argMax(final_rank, updated_at) AS final_rank,
		max(updated_at) AS rank_updated_at
	FROM raffle_attempt_ranks
	WHERE sale_id = ?
	GROUP BY sale_id, txid
) AS rk USING (sale_id, txid)`

func scanAttempt(rows driver.Rows) (model.PurchaseAttempt, error) {
	var (
		attempt        model.PurchaseAttempt
		status         string
		accepted       uint8
		hasWeight      uint8
		weight         uint64
		hasProvisional uint8
		provisional    uint32
		hasFinal       uint8
		final          uint32
	)
	if err := rows.Scan(
		&attempt.SaleID,
		&attempt.TxID,
		&attempt.Payload,
		&status,
		&attempt.AmountPaid,
		&attempt.BuyerIDHash,
		&attempt.CreatedAt,
		&attempt.UpdatedAt,
		&accepted,
		&attempt.AcceptingBlock,
		&hasWeight,
		&weight,
		&attempt.Confirmations,
		&hasProvisional,
		&provisional,
		&hasFinal,
		&final,
	); err != nil {
		return model.PurchaseAttempt{}, err
	}

	attempt.ValidationStatus = model.ValidationStatus(status)
	attempt.Accepted = accepted != 0
	if hasWeight != 0 {
		attempt.FinalityWeight = &weight
	}
	if hasProvisional != 0 {
		attempt.ProvisionalRank = &provisional
	}
	if hasFinal != 0 {
		attempt.FinalRank = &final
	}
	return attempt, nil
}

func collectAttempts(rows driver.Rows) ([]model.PurchaseAttempt, error) {
	var attempts []model.PurchaseAttempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}
