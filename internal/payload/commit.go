package payload

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const commitTag = "tickasting-commit"

// EncodeCommit builds the on-chain commit memo for a sale's Merkle root:
// the hex-encoded bytes of "<tag>|v1|<saleId>|<merkleRootHex>".
func EncodeCommit(saleID, merkleRootHex string) string {
	s := fmt.Sprintf("%s|v1|%s|%s", commitTag, saleID, merkleRootHex)
	return hex.EncodeToString([]byte(s))
}

// DecodeCommit parses a commit memo back into sale id and root.
func DecodeCommit(memoHex string) (saleID, merkleRootHex string, err error) {
	raw, err := hex.DecodeString(memoHex)
	if err != nil {
		return "", "", fmt.Errorf("payload: commit memo is not hex: %w", err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 4 || parts[0] != commitTag {
		return "", "", fmt.Errorf("payload: not a commit memo")
	}
	if parts[1] != "v1" {
		return "", "", fmt.Errorf("%w: %s", ErrVersion, parts[1])
	}
	return parts[2], parts[3], nil
}
