// Package merkle builds the winners-list commitment: a Merkle root committed
// on-chain plus per-winner inclusion proofs an adversarial client can replay
// against the same ledger data.
package merkle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// HashSize is the digest length of every node in the tree.
const HashSize = sha256.Size

// emptyPreimage is hashed when a sale has zero winners, so an empty tree
// still yields a deterministic root.
const emptyPreimage = "raffle-merkle|v1|empty"

// Side records which side of the parent a proof sibling sat on. Node hashing
// is order-independent (sorted pair), so the side is informational for
// auditors replaying the tree shape.
type Side string

const (
	// SideLeft marks a sibling that was the left child.
	SideLeft Side = "left"
	// SideRight marks a sibling that was the right child.
	SideRight Side = "right"
)

// Leaf is the exact tuple hashed into the tree. Any mutation changes the root.
type Leaf struct {
	FinalRank      uint32
	TxID           string
	AcceptingBlock string
	FinalityWeight *uint64
	BuyerIDHash    string
}

// ProofStep is one level of an inclusion proof.
type ProofStep struct {
	Hash     [HashSize]byte
	Position Side
}

// Proof proves one leaf's inclusion under a root.
type Proof struct {
	LeafHash [HashSize]byte
	Steps    []ProofStep
}

// LeafHash digests the pipe-joined leaf tuple. Missing block reference and
// weight are encoded as empty fields, which is part of the public contract.
func LeafHash(l Leaf) [HashSize]byte {
	weight := ""
	if l.FinalityWeight != nil {
		weight = strconv.FormatUint(*l.FinalityWeight, 10)
	}
	preimage := fmt.Sprintf("%d|%s|%s|%s|%s",
		l.FinalRank, l.TxID, l.AcceptingBlock, weight, l.BuyerIDHash)
	return sha256.Sum256([]byte(preimage))
}

// Root computes the Merkle root over the leaves in order. Zero leaves hash
// the canonical empty sentinel rather than erroring.
func Root(leaves []Leaf) [HashSize]byte {
	if len(leaves) == 0 {
		return sha256.Sum256([]byte(emptyPreimage))
	}
	level := leafLevel(leaves)
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0]
}

// Prove builds the inclusion proof for the leaf at index. The second return
// is false when the index is out of range; absence is not an error.
func Prove(leaves []Leaf, index int) (Proof, bool) {
	if index < 0 || index >= len(leaves) {
		return Proof{}, false
	}

	proof := Proof{LeafHash: LeafHash(leaves[index])}
	level := leafLevel(leaves)
	pos := index
	for len(level) > 1 {
		sibling := pos ^ 1
		side := SideLeft
		if sibling > pos {
			side = SideRight
		}
		if sibling >= len(level) {
			// Odd node at this level pairs with itself.
			sibling = pos
		}
		proof.Steps = append(proof.Steps, ProofStep{Hash: level[sibling], Position: side})
		level = nextLevel(level)
		pos /= 2
	}
	return proof, true
}

// VerifyProof recomputes the root by folding the leaf hash with each proof
// step in order and compares it to the expected root.
func VerifyProof(p Proof, root [HashSize]byte) bool {
	cur := p.LeafHash
	for _, step := range p.Steps {
		cur = hashPair(cur, step.Hash)
	}
	return cur == root
}

// HashHex renders a node hash for the published JSON documents.
func HashHex(h [HashSize]byte) string {
	return hex.EncodeToString(h[:])
}

func leafLevel(leaves []Leaf) [][HashSize]byte {
	level := make([][HashSize]byte, len(leaves))
	for i, l := range leaves {
		level[i] = LeafHash(l)
	}
	return level
}

func nextLevel(level [][HashSize]byte) [][HashSize]byte {
	next := make([][HashSize]byte, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, hashPair(level[i], level[i+1]))
		} else {
			next = append(next, hashPair(level[i], level[i]))
		}
	}
	return next
}

// hashPair digests the two child hashes concatenated in sorted order, so
// hash(a,b) == hash(b,a) and the commitment carries no left/right ambiguity.
func hashPair(a, b [HashSize]byte) [HashSize]byte {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	buf := make([]byte, 0, 2*HashSize)
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)
	return sha256.Sum256(buf)
}
