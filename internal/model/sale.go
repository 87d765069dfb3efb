// Package model defines domain models for the raffle allocation pipeline.
package model

import "time"

// SaleStatus describes the lifecycle state of a sale.
type SaleStatus string

var (
	// SaleScheduled marks a sale that has been created but not opened yet.
	SaleScheduled SaleStatus = "scheduled"
	// SaleLive marks a sale currently accepting purchase attempts.
	SaleLive SaleStatus = "live"
	// SaleFinalizing marks a sale whose ranks are frozen and whose Merkle
	// root has been generated but not committed on-chain yet.
	SaleFinalizing SaleStatus = "finalizing"
	// SaleFinalized marks a sale whose Merkle root is committed on-chain.
	SaleFinalized SaleStatus = "finalized"
)

// saleTransitions maps each status to its single legal successor.
var saleTransitions = map[SaleStatus]SaleStatus{
	SaleScheduled:  SaleLive,
	SaleLive:       SaleFinalizing,
	SaleFinalizing: SaleFinalized,
}

// CanTransition reports whether moving from one status to another is legal.
// Transitions are one-directional and each status has exactly one successor.
func CanTransition(from, to SaleStatus) bool {
	next, ok := saleTransitions[from]
	return ok && next == to
}

// Sale represents one raffle round.
type Sale struct {
	ID              string
	Network         string
	TreasuryAddress string
	UnitPrice       uint64
	SupplyTotal     uint32
	PerAddressCap   *uint32
	PowDifficulty   uint8
	FinalityDepth   uint64
	FallbackMode    bool
	Status          SaleStatus
	MerkleRoot      string
	CommitTxID      string
	FinalizedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Active reports whether background sweeps should still process the sale.
// Ranks and acceptance state are frozen once finalization starts.
func (s *Sale) Active() bool {
	return s.Status == SaleLive
}
