package model

import "time"

// Winner is one entry of a snapshot's winners array, in final-rank order.
type Winner struct {
	Rank           uint32  `json:"rank"`
	TxID           string  `json:"txid"`
	AcceptingBlock string  `json:"acceptingBlock,omitempty"`
	FinalityWeight *uint64 `json:"finalityWeight"`
	Confirmations  uint64  `json:"confirmations"`
	BuyerIDHash    string  `json:"buyerIdHash,omitempty"`
}

// AllocationSnapshot is the published, reproducible description of a sale's
// allocation: terms, ordering rule, winners and the Merkle root over them.
// Regenerating it from the same finalized attempt set is byte-identical.
type AllocationSnapshot struct {
	SaleID          string     `json:"saleId"`
	Network         string     `json:"network"`
	TreasuryAddress string     `json:"treasuryAddress"`
	UnitPrice       uint64     `json:"unitPrice"`
	SupplyTotal     uint32     `json:"supplyTotal"`
	FinalityDepth   uint64     `json:"finalityDepth"`
	PowAlgorithm    string     `json:"powAlgorithm"`
	PowDifficulty   uint8      `json:"powDifficulty"`
	FallbackMode    bool       `json:"fallbackMode"`
	OrderingRule    string     `json:"orderingRule"`
	GeneratedAt     time.Time  `json:"generatedAt"`
	TotalAttempts   uint64     `json:"totalAttempts"`
	ValidAttempts   uint64     `json:"validAttempts"`
	Winners         []Winner   `json:"winners"`
	LosersCount     uint64     `json:"losersCount"`
	MerkleRoot      string     `json:"merkleRoot"`
	CommitTxID      string     `json:"commitTxId,omitempty"`
}
