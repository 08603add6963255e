// Package convert provides bounded integer conversions for configuration
// values handed to drivers.
package convert

import (
	"fmt"
	"math"
)

// IntToInt32 converts an int to int32, returning an error on overflow.
func IntToInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// IntToUint32Clamped converts an int to uint32. Negative values become 0.
func IntToUint32Clamped(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
