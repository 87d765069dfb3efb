// Package payload encodes and decodes the on-chain memos used by the raffle:
// the fixed-width purchase memo attached to payment transactions and the
// commit memo carrying a sale's Merkle root.
package payload

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// MemoSize is the exact length of an encoded purchase memo.
const MemoSize = 59

// Version is the only supported memo layout version.
const Version uint8 = 1

// BuyerHashSize is the length of the buyer identity hash.
const BuyerHashSize = 20

var magic = [4]byte{'T', 'K', 'A', 'S'}

// Decode failures are distinct so callers can tell "not our format" apart
// from "corrupted".
var (
	ErrLength  = errors.New("payload: wrong memo length")
	ErrMagic   = errors.New("payload: bad magic")
	ErrVersion = errors.New("payload: unsupported version")
)

// Memo is the decoded purchase memo.
type Memo struct {
	SaleID      uuid.UUID
	BuyerIDHash [BuyerHashSize]byte
	ClientTime  int64
	AlgorithmID uint8
	Difficulty  uint8
	Nonce       uint64
}

// BuyerIDHashHex returns the buyer identity hash in lowercase hex.
func (m *Memo) BuyerIDHashHex() string {
	return hex.EncodeToString(m.BuyerIDHash[:])
}

// Encode serializes the memo into its fixed 59-byte layout:
// 4 magic, 1 version, 16 sale id, 20 buyer hash, 8 BE client timestamp,
// 1 algorithm id, 1 difficulty, 8 BE nonce.
func Encode(m Memo) []byte {
	out := make([]byte, 0, MemoSize)
	out = append(out, magic[:]...)
	out = append(out, Version)
	out = append(out, m.SaleID[:]...)
	out = append(out, m.BuyerIDHash[:]...)
	out = binary.BigEndian.AppendUint64(out, uint64(m.ClientTime))
	out = append(out, m.AlgorithmID, m.Difficulty)
	out = binary.BigEndian.AppendUint64(out, m.Nonce)
	return out
}

// Decode parses a purchase memo, rejecting wrong length, wrong magic and
// unsupported versions with distinct errors.
func Decode(raw []byte) (Memo, error) {
	if len(raw) != MemoSize {
		return Memo{}, fmt.Errorf("%w: got %d bytes", ErrLength, len(raw))
	}
	if !bytes.Equal(raw[:4], magic[:]) {
		return Memo{}, ErrMagic
	}
	if raw[4] != Version {
		return Memo{}, fmt.Errorf("%w: %d", ErrVersion, raw[4])
	}

	var m Memo
	copy(m.SaleID[:], raw[5:21])
	copy(m.BuyerIDHash[:], raw[21:41])
	m.ClientTime = int64(binary.BigEndian.Uint64(raw[41:49]))
	m.AlgorithmID = raw[49]
	m.Difficulty = raw[50]
	m.Nonce = binary.BigEndian.Uint64(raw[51:59])
	return m, nil
}

// BuyerIDHash derives the 20-byte buyer identity hash from a payer address.
func BuyerIDHash(address string) [BuyerHashSize]byte {
	var out [BuyerHashSize]byte
	h, err := blake2b.New(BuyerHashSize, nil)
	if err != nil {
		// blake2b only errors on bad key/size parameters, which are fixed here.
		panic(err)
	}
	h.Write([]byte(address))
	copy(out[:], h.Sum(nil))
	return out
}
