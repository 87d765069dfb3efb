// Package service implements the raffle pipeline: transaction scanning,
// acceptance tracking, rank computation, snapshot generation and the sale
// lifecycle.
package service

import (
	"context"
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/ledger"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the persistence surface the pipeline depends on. Attempt
	// updates are row-scoped: each write touches one (saleID, txID) row so
	// concurrent acceptance and rank writers never lose each other's fields.
	Store interface {
		GetSale(ctx context.Context, saleID string) (*model.Sale, error)
		ListSalesByStatus(ctx context.Context, status model.SaleStatus) ([]model.Sale, error)
		MarkSaleLive(ctx context.Context, saleID string) error
		MarkSaleFinalizing(ctx context.Context, saleID, merkleRoot string, finalizedAt time.Time) error
		MarkSaleFinalized(ctx context.Context, saleID, commitTxID string) error

		// InsertAttemptsSkipDuplicates stores new attempts, silently skipping
		// rows whose (saleID, txID) already exists. Returns the number of
		// rows actually inserted.
		InsertAttemptsSkipDuplicates(ctx context.Context, attempts []model.PurchaseAttempt) (int, error)
		// AttemptsBelowFinality returns attempts that are unaccepted or whose
		// confirmation depth is below the threshold.
		AttemptsBelowFinality(ctx context.Context, saleID string, finalityDepth uint64) ([]model.PurchaseAttempt, error)
		// AcceptedValidAttempts returns accepted attempts whose validation
		// status admits them into the ordering.
		AcceptedValidAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error)
		// FinalRankedAttempts returns attempts holding a final rank, ordered
		// by final rank ascending.
		FinalRankedAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error)
		// RankedAttempts returns attempts currently holding a provisional or
		// final rank.
		RankedAttempts(ctx context.Context, saleID string) ([]model.PurchaseAttempt, error)
		CountAttemptsByStatus(ctx context.Context, saleID string) (map[model.ValidationStatus]uint64, error)
		UpdateAttemptAcceptance(ctx context.Context, attempt model.PurchaseAttempt) error
		UpdateAttemptRanks(ctx context.Context, saleID, txID string, provisional, final *uint32) error
	}

	// LedgerAdapter is the slice of the ledger query surface the pipeline
	// consumes. GetBlockDetails returns (nil, nil) for an unknown block.
	LedgerAdapter interface {
		ListAddressTransactions(ctx context.Context, address string, opts ledger.ListOptions) (ledger.AddressTransactionsPage, error)
		GetTransactionsAcceptance(ctx context.Context, txids []string) ([]ledger.Acceptance, error)
		GetBlockDetails(ctx context.Context, blockRef string) (*ledger.BlockDetails, error)
	}

	// ScannerMetrics observes scanner sweeps.
	ScannerMetrics interface {
		ObserveScan(saleID string, discovered, errCount int, started time.Time)
	}

	// TrackerMetrics observes acceptance tracking sweeps.
	TrackerMetrics interface {
		ObserveTrack(saleID string, updated, newlyAccepted, newlyFinal, errCount int, started time.Time)
	}

	// OrderingMetrics observes rank computation sweeps.
	OrderingMetrics interface {
		ObserveCompute(saleID string, written, errCount int, started time.Time)
	}
)

// TrackingResult reports one sale's acceptance refresh. Per-batch failures
// are collected here, never thrown past the tracker boundary.
type TrackingResult struct {
	SaleID        string
	Checked       int
	Updated       int
	NewlyAccepted int
	NewlyFinal    int
	Errors        []string
}

// OrderingResult reports one sale's rank computation.
type OrderingResult struct {
	SaleID      string
	Provisional int
	Final       int
	Written     int
	Errors      []string
}

// ScanResult reports one sale's treasury scan.
type ScanResult struct {
	SaleID     string
	Discovered int
	Errors     []string
}
