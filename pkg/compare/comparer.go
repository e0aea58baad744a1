// SPDX-License-Identifier: MIT
package compare

// Comparer is implemented by types that define their own total order. Compare
// returns a negative number, zero or a positive number when the receiver is
// less than, equal to or greater than other.
type Comparer[T any] interface {
	Compare(other T) int
}

// OrderCmp returns the three-way ordering of lhs and rhs. No tolerance applies.
func OrderCmp[T Comparer[T]](lhs, rhs T) Ordering {
	return ordering(lhs.Compare(rhs))
}

// EqualCmp reports whether lhs and rhs compare as equal.
func EqualCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) == 0
}

// NotEqualCmp reports whether lhs and rhs differ.
func NotEqualCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) != 0
}

// LessCmp reports whether lhs orders before rhs.
func LessCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) < 0
}

// LessOrEqualCmp reports whether lhs does not order after rhs.
func LessOrEqualCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) <= 0
}

// GreaterCmp reports whether lhs orders after rhs.
func GreaterCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) > 0
}

// GreaterOrEqualCmp reports whether lhs does not order before rhs.
func GreaterOrEqualCmp[T Comparer[T]](lhs, rhs T) bool {
	return lhs.Compare(rhs) >= 0
}
