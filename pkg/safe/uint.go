// Package safe provides checked numeric narrowing for externally supplied
// counts.
package safe

import (
	"fmt"
	"math"
)

// Uint64 converts a signed count to uint64, rejecting negatives.
func Uint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 narrows an unsigned count to uint32 with a range check.
func Uint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
