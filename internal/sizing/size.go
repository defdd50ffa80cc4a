// Package sizing provides safe size arithmetic and conversions to prevent overflow.
package sizing

import "math"

// ToUint64 converts an int64 to uint64, returning negativeErr for negative values.
func ToUint64(size int64, negativeErr error) (uint64, error) {
	if size < 0 {
		return 0, negativeErr
	}
	return uint64(size), nil
}

// ToInt converts a uint64 to int, returning overflowErr if it doesn't fit.
func ToInt(size uint64, overflowErr error) (int, error) {
	if size > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(size), nil
}

// AddUint64 adds two uint64 values, returning (result, false) on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
