// SPDX-License-Identifier: MIT

/*
Package bitint provides power-of-two helpers for sizing and alignment. The
package focuses on the operations platform detection needs to validate and pad
to cache-line boundaries.

Design Principles:
- Zero Allocations: All operations use stack memory only
- Predictable Performance: O(1) constant time operations
- Width Generic: One implementation for every integer type

Usage:

	// Round a buffer up to the next power of two
	size := bitint.NextPowerOfTwo(1000) // Returns 1024

	// Verify a cache line size is usable for alignment
	ok := bitint.IsPowerOfTwo(platform.CacheLineSize)

----------------------------------------------------------------------

What this code does:

	NextPowerOfTwo returns the next power of 2 greater than or
	equal to size. For powers of 2, it returns the same value.

	The subtraction (size-1) is critical, without the subtraction,
	powers of 2 would be incorrectly doubled.

	WITH subtraction (correct):
	- For input 8 (already a power of 2):
	  size-1 = 7 (binary 0111)
	  bits.Len64(7) = 3
	  1 << 3 = 8

	WITHOUT subtraction (incorrect):
	- For input 8:
	  bits.Len64(8) = 4
	  1 << 4 = 16
*/
package bitint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NextPowerOfTwo returns the next power of 2 >= size. Zero and negative sizes
// return 1. The result wraps to zero when it does not fit in T.
//
// Examples:
//
//	Input  Output  Explanation
//	4      4      Already power of 2 (preserved)
//	5      8      Next power after 5
//	0      1      Handle zero case
//	-1     1      Handle negative case
func NextPowerOfTwo[T constraints.Integer](size T) T {
	if size <= 0 {
		return 1
	}
	return T(uint64(1) << bits.Len64(uint64(size-1)))
}

// IsPowerOfTwo checks if n is a power of 2 using bit manipulation.
// The expression (n & (n-1)) == 0 works because:
//   - Powers of 2 have exactly one bit set
//   - Subtracting 1 from a power of 2 sets all lower bits
//   - AND operation will be 0 only for powers of 2
//
// Examples:
//
//	Input  Output  Binary
//	8      true    1000 & 0111 = 0000
//	7      false   0111 & 0110 = 0110
//	0      false   Not positive
//	-8     false   Not positive
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && (n&(n-1)) == 0
}

// AlignUp rounds n up to the next multiple of align. align must be a power of
// two; otherwise n is returned unchanged.
func AlignUp[T constraints.Integer](n, align T) T {
	if !IsPowerOfTwo(align) {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// Padding returns the number of bytes needed to advance n to the next multiple
// of align.
func Padding[T constraints.Integer](n, align T) T {
	return AlignUp(n, align) - n
}
