// SPDX-License-Identifier: MIT
package compare

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"hyperion/internal/numeric"
)

// EpsilonType selects how an Epsilon turns into a tolerance.
type EpsilonType uint8

const (
	// Absolute tolerances are used as-is.
	Absolute EpsilonType = iota
	// Relative tolerances are scaled by the larger operand magnitude.
	Relative
)

// DefaultRelative is the tolerance fraction used for a Relative epsilon when
// none is given.
const DefaultRelative = 0.001

var ErrUnknownEpsilonType = errors.New("unknown epsilon type")

func (t EpsilonType) String() string {
	switch t {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return "unknown"
	}
}

// ParseEpsilonType converts a case-insensitive name to an EpsilonType.
func ParseEpsilonType(s string) (EpsilonType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute", "abs":
		return Absolute, nil
	case "relative", "rel":
		return Relative, nil
	default:
		return Absolute, errors.Wrapf(ErrUnknownEpsilonType, "%q", s)
	}
}

// Epsilon is an immutable floating point tolerance. The zero value is an
// Absolute tolerance of zero, which makes float comparisons exact.
type Epsilon struct {
	value float64
	kind  EpsilonType
}

// NewEpsilon returns an Epsilon of the given type. Negative values are taken
// by magnitude.
func NewEpsilon(kind EpsilonType, value float64) Epsilon {
	return Epsilon{value: math.Abs(value), kind: kind}
}

// AbsoluteEpsilon is shorthand for NewEpsilon(Absolute, value).
func AbsoluteEpsilon(value float64) Epsilon {
	return NewEpsilon(Absolute, value)
}

// RelativeEpsilon is shorthand for NewEpsilon(Relative, value).
func RelativeEpsilon(value float64) Epsilon {
	return NewEpsilon(Relative, value)
}

// DefaultEpsilon returns the tolerance used when comparing an L with an R and
// no Epsilon is supplied. Absolute defaults to the machine epsilon of the wider
// operand type. Relative defaults to DefaultRelative.
func DefaultEpsilon[L, R numeric.Number](kind EpsilonType) Epsilon {
	if kind == Relative {
		return Epsilon{value: DefaultRelative, kind: Relative}
	}
	w := numeric.Wider(numeric.Of[L](), numeric.Of[R]())
	if w.Class == numeric.Float && w.Bits == 32 {
		return Epsilon{value: numeric.Epsilon32, kind: Absolute}
	}
	return Epsilon{value: numeric.Epsilon64, kind: Absolute}
}

// Value returns the configured tolerance before any scaling.
func (e Epsilon) Value() float64 {
	return e.value
}

// Type returns whether e is Absolute or Relative.
func (e Epsilon) Type() EpsilonType {
	return e.kind
}

// Tolerance resolves e against a pair of operands into an absolute tolerance.
func (e Epsilon) Tolerance(lhs, rhs float64) float64 {
	if e.kind == Relative {
		return e.value * math.Max(math.Abs(lhs), math.Abs(rhs))
	}
	return e.value
}

func (e Epsilon) String() string {
	return e.kind.String() + "(" + strconv.FormatFloat(e.value, 'g', -1, 64) + ")"
}
