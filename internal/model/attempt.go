package model

import "time"

// ValidationStatus classifies a purchase attempt after memo inspection.
type ValidationStatus string

var (
	// AttemptPending marks an attempt that has not been classified yet.
	AttemptPending ValidationStatus = "pending"
	// AttemptValid marks an attempt with a well-formed memo and a correct
	// admission-puzzle solution.
	AttemptValid ValidationStatus = "valid"
	// AttemptValidFallback marks an attempt admitted while the sale runs in
	// fallback mode (puzzle check skipped).
	AttemptValidFallback ValidationStatus = "valid_fallback"
	// AttemptInvalidPayload marks an attempt whose memo failed to decode.
	AttemptInvalidPayload ValidationStatus = "invalid_payload"
	// AttemptInvalidPow marks an attempt whose puzzle solution is wrong.
	AttemptInvalidPow ValidationStatus = "invalid_pow"
	// AttemptInvalidSale marks an attempt whose memo references another sale.
	AttemptInvalidSale ValidationStatus = "invalid_sale"
	// AttemptInvalidUnderpaid marks an attempt that paid below the unit price.
	AttemptInvalidUnderpaid ValidationStatus = "invalid_underpaid"
)

// Valid reports whether the status admits the attempt into the ordering.
func (v ValidationStatus) Valid() bool {
	return v == AttemptValid || v == AttemptValidFallback
}

// PurchaseAttempt is one observed payment transaction addressed to a sale's
// treasury. TxID is unique within a sale.
type PurchaseAttempt struct {
	SaleID           string
	TxID             string
	Payload          []byte
	ValidationStatus ValidationStatus
	Accepted         bool
	AcceptingBlock   string
	// FinalityWeight is the accepting block's blue score. Nil means the
	// weight has not been resolved yet; the ordering comparator sorts nil
	// after every real weight.
	FinalityWeight  *uint64
	Confirmations   uint64
	AmountPaid      uint64
	BuyerIDHash     string
	ProvisionalRank *uint32
	FinalRank       *uint32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Final reports whether the attempt's confirmation depth meets the sale's
// finality threshold.
func (a *PurchaseAttempt) Final(finalityDepth uint64) bool {
	return a.Accepted && a.ValidationStatus.Valid() && a.Confirmations >= finalityDepth
}
