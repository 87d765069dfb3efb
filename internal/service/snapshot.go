package service

import (
	"context"
	"fmt"

	"github.com/StudioLIQ/tickasting-sub000/internal/merkle"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/internal/pow"
)

// SnapshotBuilder assembles the published allocation snapshot and per-winner
// Merkle proofs from current store state. Generation is a pure read: calling
// it twice without intervening writes yields byte-identical documents, so
// every field, the generation timestamp included, derives from stored state.
type SnapshotBuilder struct {
	store Store
}

// NewSnapshotBuilder builds a SnapshotBuilder.
func NewSnapshotBuilder(store Store) *SnapshotBuilder {
	return &SnapshotBuilder{store: store}
}

// Generate produces the allocation snapshot for a sale. Winners are the
// final-rank prefix up to the sale's supply; everyone past the prefix is
// counted as a loser. An empty or partially final winner set is a valid,
// possibly trivial, result.
func (b *SnapshotBuilder) Generate(ctx context.Context, saleID string) (*model.AllocationSnapshot, error) {
	sale, err := b.store.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	counts, err := b.store.CountAttemptsByStatus(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	var total, valid uint64
	for status, n := range counts {
		total += n
		if status.Valid() {
			valid += n
		}
	}

	finalRanked, err := b.store.FinalRankedAttempts(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("select final attempts: %w", err)
	}

	winnerCount := len(finalRanked)
	if winnerCount > int(sale.SupplyTotal) {
		winnerCount = int(sale.SupplyTotal)
	}
	winners := make([]model.Winner, 0, winnerCount)
	for _, a := range finalRanked[:winnerCount] {
		winners = append(winners, model.Winner{
			Rank:           *a.FinalRank,
			TxID:           a.TxID,
			AcceptingBlock: a.AcceptingBlock,
			FinalityWeight: a.FinalityWeight,
			Confirmations:  a.Confirmations,
			BuyerIDHash:    a.BuyerIDHash,
		})
	}

	// A frozen sale keeps its stored root and freeze timestamp so the
	// document stays byte-identical after finalization.
	root := sale.MerkleRoot
	if root == "" {
		root = merkle.HashHex(merkle.Root(winnerLeaves(winners)))
	}
	// Before the freeze the timestamp is the latest write the document
	// reflects, never the wall clock.
	generatedAt := sale.UpdatedAt.UTC()
	for i := range finalRanked {
		if u := finalRanked[i].UpdatedAt; u.After(generatedAt) {
			generatedAt = u.UTC()
		}
	}
	if sale.FinalizedAt != nil {
		generatedAt = sale.FinalizedAt.UTC()
	}

	return &model.AllocationSnapshot{
		SaleID:          sale.ID,
		Network:         sale.Network,
		TreasuryAddress: sale.TreasuryAddress,
		UnitPrice:       sale.UnitPrice,
		SupplyTotal:     sale.SupplyTotal,
		FinalityDepth:   sale.FinalityDepth,
		PowAlgorithm:    pow.Algorithm,
		PowDifficulty:   sale.PowDifficulty,
		FallbackMode:    sale.FallbackMode,
		OrderingRule:    OrderingRule,
		GeneratedAt:     generatedAt,
		TotalAttempts:   total,
		ValidAttempts:   valid,
		Winners:         winners,
		LosersCount:     uint64(len(finalRanked) - winnerCount),
		MerkleRoot:      root,
		CommitTxID:      sale.CommitTxID,
	}, nil
}

// ProofStep is one level of a published inclusion proof.
type ProofStep struct {
	Hash     string      `json:"hash"`
	Position merkle.Side `json:"position"`
}

// ProofResponse is the published Merkle proof document for one transaction.
type ProofResponse struct {
	Found      bool          `json:"found"`
	SaleID     string        `json:"saleId"`
	TxID       string        `json:"txid"`
	FinalRank  uint32        `json:"finalRank,omitempty"`
	Leaf       *model.Winner `json:"leaf,omitempty"`
	Proof      []ProofStep   `json:"proof,omitempty"`
	Root       string        `json:"root"`
	CommitTxID string        `json:"commitTxId,omitempty"`
}

// Proof builds the inclusion proof for a winner transaction. A transaction
// that is not a winner yields found=false with the root, not an error.
func (b *SnapshotBuilder) Proof(ctx context.Context, saleID, txID string) (*ProofResponse, error) {
	snap, err := b.Generate(ctx, saleID)
	if err != nil {
		return nil, err
	}

	resp := &ProofResponse{
		SaleID:     saleID,
		TxID:       txID,
		Root:       snap.MerkleRoot,
		CommitTxID: snap.CommitTxID,
	}

	index := -1
	for i := range snap.Winners {
		if snap.Winners[i].TxID == txID {
			index = i
			break
		}
	}
	if index < 0 {
		return resp, nil
	}

	leaves := winnerLeaves(snap.Winners)
	proof, ok := merkle.Prove(leaves, index)
	if !ok {
		return resp, nil
	}

	resp.Found = true
	resp.FinalRank = snap.Winners[index].Rank
	resp.Leaf = &snap.Winners[index]
	resp.Proof = make([]ProofStep, 0, len(proof.Steps))
	for _, step := range proof.Steps {
		resp.Proof = append(resp.Proof, ProofStep{
			Hash:     merkle.HashHex(step.Hash),
			Position: step.Position,
		})
	}
	return resp, nil
}

func winnerLeaves(winners []model.Winner) []merkle.Leaf {
	leaves := make([]merkle.Leaf, 0, len(winners))
	for _, w := range winners {
		leaves = append(leaves, merkle.Leaf{
			FinalRank:      w.Rank,
			TxID:           w.TxID,
			AcceptingBlock: w.AcceptingBlock,
			FinalityWeight: w.FinalityWeight,
			BuyerIDHash:    w.BuyerIDHash,
		})
	}
	return leaves
}
