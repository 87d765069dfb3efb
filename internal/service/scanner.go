package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/ledger"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/internal/payload"
	"github.com/StudioLIQ/tickasting-sub000/internal/pow"
)

const (
	defaultScannerPageLimit = 50
	defaultScannerMaxPages  = 20
)

// AttemptSink receives discovered attempts. The production sink batches them
// into duplicate-skipping inserts.
type AttemptSink interface {
	Write(ctx context.Context, attempt model.PurchaseAttempt) error
}

// ScannerConfig tunes the transaction scanner.
type ScannerConfig struct {
	PageLimit int
	MaxPages  int
}

// TransactionScanner discovers payment transactions addressed to each sale's
// treasury, classifies their memos and records them as purchase attempts.
type TransactionScanner struct {
	adapter LedgerAdapter
	sink    AttemptSink
	metrics ScannerMetrics
	logger  *zap.Logger
	cfg     ScannerConfig
	now     func() time.Time
}

// NewTransactionScanner builds a TransactionScanner with dependencies.
func NewTransactionScanner(adapter LedgerAdapter, sink AttemptSink, metrics ScannerMetrics, logger *zap.Logger, cfg ScannerConfig) (*TransactionScanner, error) {
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = defaultScannerPageLimit
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultScannerMaxPages
	}
	return &TransactionScanner{
		adapter: adapter,
		sink:    sink,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}, nil
}

// Scan sweeps every given sale's treasury address and returns one result per
// sale.
func (s *TransactionScanner) Scan(ctx context.Context, sales []model.Sale) []ScanResult {
	results := make([]ScanResult, 0, len(sales))
	for i := range sales {
		results = append(results, s.scanSale(ctx, sales[i]))
	}
	return results
}

func (s *TransactionScanner) scanSale(ctx context.Context, sale model.Sale) ScanResult {
	started := time.Now()
	result := ScanResult{SaleID: sale.ID}
	defer func() {
		s.metrics.ObserveScan(sale.ID, result.Discovered, len(result.Errors), started)
	}()

	cursor := ""
	for page := 0; page < s.cfg.MaxPages; page++ {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, ctx.Err().Error())
			return result
		}

		listing, err := s.adapter.ListAddressTransactions(ctx, sale.TreasuryAddress, ledger.ListOptions{
			Limit:  s.cfg.PageLimit,
			Cursor: cursor,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("page %d: %v", page+1, err))
			return result
		}

		for _, tx := range listing.Transactions {
			attempt, ok := s.classify(sale, tx)
			if !ok {
				continue
			}
			if err := s.sink.Write(ctx, attempt); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("write %s: %v", tx.TxID, err))
				continue
			}
			result.Discovered++
		}

		if !listing.HasMore {
			break
		}
		cursor = listing.Cursor
	}
	return result
}

// classify turns a ledger transaction into a purchase attempt. Transactions
// that pay nothing to the treasury are not attempts at all; everything else
// is recorded with a validation status so the audit trail keeps rejected
// attempts visible.
func (s *TransactionScanner) classify(sale model.Sale, tx ledger.Transaction) (model.PurchaseAttempt, bool) {
	var paid uint64
	for _, out := range tx.Outputs {
		if out.Address == sale.TreasuryAddress {
			paid += out.Value
		}
	}
	if paid == 0 {
		return model.PurchaseAttempt{}, false
	}

	now := s.now().UTC()
	attempt := model.PurchaseAttempt{
		SaleID:     sale.ID,
		TxID:       tx.TxID,
		AmountPaid: paid,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if paid < sale.UnitPrice {
		attempt.ValidationStatus = model.AttemptInvalidUnderpaid
		return attempt, true
	}

	raw, err := hex.DecodeString(tx.PayloadHex)
	if err != nil || len(raw) == 0 {
		attempt.ValidationStatus = s.noMemoStatus(sale)
		return attempt, true
	}
	attempt.Payload = raw

	memo, err := payload.Decode(raw)
	if err != nil {
		attempt.ValidationStatus = s.noMemoStatus(sale)
		return attempt, true
	}
	attempt.BuyerIDHash = memo.BuyerIDHashHex()

	switch {
	case memo.SaleID.String() != sale.ID:
		attempt.ValidationStatus = model.AttemptInvalidSale
	case sale.FallbackMode:
		attempt.ValidationStatus = model.AttemptValidFallback
	case !pow.Verify(sale.ID, attempt.BuyerIDHash, sale.PowDifficulty, memo.Nonce):
		attempt.ValidationStatus = model.AttemptInvalidPow
	default:
		attempt.ValidationStatus = model.AttemptValid
	}
	return attempt, true
}

// noMemoStatus classifies an attempt whose memo is missing or undecodable.
// Fallback mode admits it anyway; the buyer hash stays empty.
func (s *TransactionScanner) noMemoStatus(sale model.Sale) model.ValidationStatus {
	if sale.FallbackMode {
		return model.AttemptValidFallback
	}
	return model.AttemptInvalidPayload
}
