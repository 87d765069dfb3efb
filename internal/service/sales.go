package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/internal/payload"
)

// SaleLifecycle drives a sale through its one-directional state machine:
// scheduled -> live -> finalizing -> finalized. Finalize is the single
// authoritative freeze point: once it runs, ranks and the Merkle root never
// change again.
type SaleLifecycle struct {
	store     Store
	snapshots *SnapshotBuilder
	logger    *zap.Logger
	now       func() time.Time
}

// NewSaleLifecycle builds a SaleLifecycle.
func NewSaleLifecycle(store Store, snapshots *SnapshotBuilder, logger *zap.Logger) *SaleLifecycle {
	return &SaleLifecycle{
		store:     store,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Publish opens a scheduled sale for purchases.
func (l *SaleLifecycle) Publish(ctx context.Context, saleID string) error {
	sale, err := l.requireStatus(ctx, saleID, model.SaleLive)
	if err != nil {
		return err
	}
	if err := l.store.MarkSaleLive(ctx, sale.ID); err != nil {
		return err
	}
	l.logger.Info("sale published", zap.String("sale_id", sale.ID))
	return nil
}

// Finalize freezes a live sale: it generates the allocation snapshot over
// the current final-ranked attempts, stores the Merkle root and the freeze
// timestamp, and moves the sale to finalizing. Background sweeps skip
// non-live sales, so no rank can mutate afterwards.
func (l *SaleLifecycle) Finalize(ctx context.Context, saleID string) (*model.AllocationSnapshot, error) {
	sale, err := l.requireStatus(ctx, saleID, model.SaleFinalizing)
	if err != nil {
		return nil, err
	}

	snap, err := l.snapshots.Generate(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	finalizedAt := l.now().UTC()
	if err := l.store.MarkSaleFinalizing(ctx, sale.ID, snap.MerkleRoot, finalizedAt); err != nil {
		return nil, err
	}
	snap.GeneratedAt = finalizedAt

	l.logger.Info("sale finalized",
		zap.String("sale_id", sale.ID),
		zap.String("merkle_root", snap.MerkleRoot),
		zap.Int("winners", len(snap.Winners)),
		zap.Uint64("losers", snap.LosersCount))
	return snap, nil
}

// Commit records the on-chain commit transaction for a finalizing sale and
// completes the state machine. It returns the hex commit memo that belongs
// in that transaction's payload.
func (l *SaleLifecycle) Commit(ctx context.Context, saleID, commitTxID string) (string, error) {
	sale, err := l.requireStatus(ctx, saleID, model.SaleFinalized)
	if err != nil {
		return "", err
	}
	if commitTxID == "" {
		return "", &model.ValidationError{Msg: "commit txid is required"}
	}
	if err := l.store.MarkSaleFinalized(ctx, sale.ID, commitTxID); err != nil {
		return "", err
	}
	l.logger.Info("sale committed",
		zap.String("sale_id", sale.ID),
		zap.String("commit_txid", commitTxID))
	return payload.EncodeCommit(sale.ID, sale.MerkleRoot), nil
}

func (l *SaleLifecycle) requireStatus(ctx context.Context, saleID string, to model.SaleStatus) (*model.Sale, error) {
	sale, err := l.store.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(sale.Status, to) {
		return nil, &model.StateTransitionError{SaleID: saleID, From: sale.Status, To: to}
	}
	return sale, nil
}
