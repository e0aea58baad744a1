// SPDX-License-Identifier: MIT

/*
Package compare implements comparisons that stay correct across mixed numeric
types.

Integer pairs are compared exactly. A negative signed value is always less than
any unsigned value, instead of wrapping to a large unsigned number as a plain
conversion would.

When either operand is a float, the integer side is promoted to float64 and the
pair is compared within a tolerance:

	compare.Equal(1, 1.0)                                  // true
	compare.Equal(0.1+0.2, 0.3)                            // true
	compare.Equal(2.0, 2.2, compare.RelativeEpsilon(0.1))  // true
	compare.Less(1.0, 1.0+0x1p-52)                         // false, within epsilon

The ordering predicates use the same tolerance, so for any pair without a NaN
exactly one of Less, Equal and Greater holds. NaN is unordered: every predicate
except NotEqual reports false. Infinities compare exactly.

Types that are not numbers compare through their own Compare method with the
*Cmp variants.
*/
package compare

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"hyperion/internal/numeric"
)

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	LessThan    Ordering = -1
	Equivalent  Ordering = 0
	GreaterThan Ordering = 1
	// Unordered is reported when either operand is NaN.
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case LessThan:
		return "less"
	case Equivalent:
		return "equivalent"
	case GreaterThan:
		return "greater"
	default:
		return "unordered"
	}
}

func ordering(c int) Ordering {
	switch {
	case c < 0:
		return LessThan
	case c > 0:
		return GreaterThan
	default:
		return Equivalent
	}
}

// Order compares lhs with rhs. Only the first Epsilon is used; without one the
// default Absolute epsilon for the operand types applies.
func Order[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) Ordering {
	if numeric.IsInteger[L]() && numeric.IsInteger[R]() {
		return integerOrder(lhs, rhs)
	}

	var e Epsilon
	if len(eps) > 0 {
		e = eps[0]
	} else {
		e = DefaultEpsilon[L, R](Absolute)
	}
	return floatOrder(float64(lhs), float64(rhs), e)
}

func integerOrder[L, R numeric.Number](lhs L, rhs R) Ordering {
	ls, rs := numeric.IsSigned[L](), numeric.IsSigned[R]()
	switch {
	case ls && rs:
		return ordering(cmp.Compare(int64(lhs), int64(rhs)))
	case ls && int64(lhs) < 0:
		return LessThan
	case rs && int64(rhs) < 0:
		return GreaterThan
	default:
		// Both operands are non-negative here.
		return ordering(cmp.Compare(uint64(lhs), uint64(rhs)))
	}
}

func floatOrder(lhs, rhs float64, e Epsilon) Ordering {
	switch {
	case math.IsNaN(lhs) || math.IsNaN(rhs):
		return Unordered
	case math.IsInf(lhs, 0) || math.IsInf(rhs, 0):
		return ordering(cmp.Compare(lhs, rhs))
	case scalar.EqualWithinAbs(lhs, rhs, e.Tolerance(lhs, rhs)):
		return Equivalent
	case lhs < rhs:
		return LessThan
	default:
		return GreaterThan
	}
}

// Equal reports whether lhs and rhs are equal within tolerance.
func Equal[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	return Order(lhs, rhs, eps...) == Equivalent
}

// NotEqual is the negation of Equal. It is true whenever either operand is NaN.
func NotEqual[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	return Order(lhs, rhs, eps...) != Equivalent
}

// Less reports whether lhs is below rhs by more than the tolerance.
func Less[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	return Order(lhs, rhs, eps...) == LessThan
}

// LessOrEqual reports whether lhs is below or equal to rhs within tolerance.
func LessOrEqual[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	o := Order(lhs, rhs, eps...)
	return o == LessThan || o == Equivalent
}

// Greater reports whether lhs is above rhs by more than the tolerance.
func Greater[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	return Order(lhs, rhs, eps...) == GreaterThan
}

// GreaterOrEqual reports whether lhs is above or equal to rhs within tolerance.
func GreaterOrEqual[L, R numeric.Number](lhs L, rhs R, eps ...Epsilon) bool {
	o := Order(lhs, rhs, eps...)
	return o == GreaterThan || o == Equivalent
}
