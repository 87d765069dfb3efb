// Package ledger defines the external ledger-query adapter the pipeline
// consumes, plus a REST implementation of it.
package ledger

import (
	"context"
	"time"
)

// Output is one output of a ledger transaction.
type Output struct {
	Value     uint64 `json:"value"`
	Address   string `json:"address"`
	ScriptHex string `json:"scriptHex"`
}

// Transaction is a ledger transaction as returned by address listing. The
// memo payload, when present, is hex-encoded raw bytes.
type Transaction struct {
	TxID       string   `json:"txid"`
	Outputs    []Output `json:"outputs"`
	PayloadHex string   `json:"payload"`
	BlockTime  int64    `json:"blockTime"`
}

// AddressTransactionsPage is one page of an address transaction listing.
type AddressTransactionsPage struct {
	Transactions []Transaction `json:"transactions"`
	Cursor       string        `json:"cursor"`
	HasMore      bool          `json:"hasMore"`
}

// ListOptions tunes address transaction listing.
type ListOptions struct {
	Limit        int
	Cursor       string
	AcceptedOnly bool
}

// Acceptance is the acceptance status of one transaction.
type Acceptance struct {
	TxID           string `json:"txid"`
	Accepted       bool   `json:"isAccepted"`
	AcceptingBlock string `json:"acceptingBlock"`
	Confirmations  uint64 `json:"confirmations"`
}

// BlockDetails describes an accepting block. BlueScore is the monotonic
// finality weight used as the primary ordering key.
type BlockDetails struct {
	BlockRef   string    `json:"blockRef"`
	BlueScore  uint64    `json:"blueScore"`
	Timestamp  time.Time `json:"timestamp"`
	ParentRefs []string  `json:"parentRefs"`
}

// Adapter is the ledger query surface the pipeline depends on. GetBlockDetails
// returns (nil, nil) for an unknown block so absence is representable without
// an error.
type Adapter interface {
	ListAddressTransactions(ctx context.Context, address string, opts ListOptions) (AddressTransactionsPage, error)
	GetTransactionsAcceptance(ctx context.Context, txids []string) ([]Acceptance, error)
	GetBlockDetails(ctx context.Context, blockRef string) (*BlockDetails, error)
}
