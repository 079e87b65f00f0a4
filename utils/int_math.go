// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloorDiv divides a by b rounding toward negative infinity.
// Go's / truncates toward zero, so -3/2 is -1 there and -2 here.
// b must not be zero.
func FloorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// ClampInt16 saturates x into the int16 range.
func ClampInt16(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	} else if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}

// Uint16Bits returns the two's-complement bit pattern of v.
func Uint16Bits(v int16) uint16 {
	return uint16(v)
}

// Int16Bits reinterprets a 16-bit pattern as a signed value.
func Int16Bits(v uint16) int16 {
	return int16(v)
}
