// Package pow implements the admission puzzle: a client-computed,
// server-verifiable proof of work required before a payment transaction is
// eligible for a sale.
package pow

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/bits"
)

// Algorithm names the puzzle scheme carried in the memo's algorithm byte.
const Algorithm = "sha256-lead0"

// AlgorithmID is the wire identifier of Algorithm.
const AlgorithmID uint8 = 1

// DefaultMaxIterations bounds a Solve call when the caller does not supply a
// cap.
const DefaultMaxIterations uint64 = 1 << 22

const preimagePrefix = "tickasting-pow"

// ErrExhausted reports that the nonce search hit its iteration cap before
// finding a solution. It is fatal to that Solve call only.
var ErrExhausted = errors.New("admission puzzle: iteration cap exhausted")

// Solution is a successful nonce search result.
type Solution struct {
	Nonce  uint64
	Digest [sha256.Size]byte
}

// SolveParams tunes the nonce search. A zero value searches from nonce 0 with
// DefaultMaxIterations.
type SolveParams struct {
	Start         uint64
	MaxIterations uint64
}

// Preimage returns the exact string hashed for a candidate nonce. It is part
// of the public contract so third parties can re-verify admissions.
func Preimage(saleID, buyerIDHashHex string, nonce uint64) string {
	return fmt.Sprintf("%s|v1|%s|%s|%d", preimagePrefix, saleID, buyerIDHashHex, nonce)
}

// Digest hashes the preimage for a candidate nonce.
func Digest(saleID, buyerIDHashHex string, nonce uint64) [sha256.Size]byte {
	return sha256.Sum256([]byte(Preimage(saleID, buyerIDHashHex, nonce)))
}

// Verify reports whether nonce solves the puzzle at the given difficulty.
func Verify(saleID, buyerIDHashHex string, difficulty uint8, nonce uint64) bool {
	d := Digest(saleID, buyerIDHashHex, nonce)
	return leadingZeroBits(d[:]) >= int(difficulty)
}

// Solve searches nonces linearly from p.Start until a digest with at least
// difficulty leading zero bits is found. Expected work is 2^difficulty hash
// evaluations. Exceeding the iteration cap returns ErrExhausted, never an
// invalid nonce. Difficulty 0 always succeeds at the starting nonce.
func Solve(saleID, buyerIDHashHex string, difficulty uint8, p SolveParams) (Solution, error) {
	maxIter := p.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}

	nonce := p.Start
	for i := uint64(0); i < maxIter; i++ {
		d := Digest(saleID, buyerIDHashHex, nonce)
		if leadingZeroBits(d[:]) >= int(difficulty) {
			return Solution{Nonce: nonce, Digest: d}, nil
		}
		nonce++
	}
	return Solution{}, ErrExhausted
}

func leadingZeroBits(digest []byte) int {
	n := 0
	for _, b := range digest {
		if b == 0 {
			n += 8
			continue
		}
		n += bits.LeadingZeros8(b)
		break
	}
	return n
}
