// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

const (
	errUint32RangeExceeded = "value %d exceeds uint32 range"
)

// IntToUint32 safely converts an int to uint32 using cast and checks for overflow
func IntToUint32(value int) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}

// Uint64ToUint8 safely converts an uint64 to uint8 using cast and checks for overflow
func Uint64ToUint8(value uint64) (uint8, error) {
	if value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}

// Uint64ToUint16 safely converts an uint64 to uint16 using cast and checks for overflow
func Uint64ToUint16(value uint64) (uint16, error) {
	if value > math.MaxUint16 {
		return 0, fmt.Errorf("value %d exceeds uint16 range", value)
	}

	return cast.ToUint16E(value)
}

// Uint64ToUint32 safely converts an uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for overflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// Float64ToBigInt converts an integral, non-negative float64 to a big.Int. JSON decoders
// produce float64 for every number, so this is the entry point for untyped numeric input.
func Float64ToBigInt(value float64) (*big.Int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("value %g is not a finite number", value)
	}
	if value < 0 {
		return nil, fmt.Errorf("value %g is negative, cannot convert to an unsigned integer", value)
	}
	if value != math.Trunc(value) {
		return nil, fmt.Errorf("value %g has fractional part, cannot convert to an unsigned integer", value)
	}

	result, _ := big.NewFloat(value).Int(nil)

	return result, nil
}
