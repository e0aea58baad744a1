// SPDX-License-Identifier: MIT
package transport

import (
	"strings"

	"github.com/pkg/errors"

	"hyperion/internal/numeric"
	"hyperion/pkg/compare"
	"hyperion/pkg/literal"
)

// ParseOperand parses lit as kind. Literals themselves carry no sign, so a
// leading '-' is applied after parsing for signed and float kinds. The
// magnitude of a negative integer may reach one past the type maximum.
func ParseOperand(kind literal.Kind, lit string) (any, error) {
	mag, neg := strings.CutPrefix(lit, "-")
	if !neg {
		return literal.ParseKind(kind, lit)
	}

	switch {
	case kind.IsFloat():
		v, err := literal.ParseKind(kind, mag)
		if err != nil {
			return nil, err
		}
		if f, ok := v.(float32); ok {
			return -f, nil
		}
		return -v.(float64), nil
	case kind.IsSigned():
		m, err := literal.U64(mag)
		if err != nil {
			return nil, errors.Wrapf(literal.StatusOf(err).Err(), "%s literal %q", kind, lit)
		}
		if m > uint64(1)<<(kind.Type().Bits-1) {
			return nil, errors.Wrapf(literal.ErrOutOfRange, "%s literal %q", kind, lit)
		}
		return narrow(kind, -int64(m)), nil
	case kind.Valid():
		return nil, errors.Wrapf(literal.ErrInvalidCharacterSequence, "%s literal %q is negative", kind, lit)
	default:
		return literal.ParseKind(kind, lit)
	}
}

func narrow(kind literal.Kind, v int64) any {
	switch kind.Type().Bits {
	case 8:
		return int8(v)
	case 16:
		return int16(v)
	case 32:
		return int32(v)
	default:
		return v
	}
}

// widen maps every parsed operand onto one of four representatives that keep
// its class and, for floats, its width.
func widen(v any) (any, error) {
	switch v := v.(type) {
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32, float64:
		return v, nil
	default:
		return nil, errors.Errorf("unsupported operand type %T", v)
	}
}

// Order compares two parsed operands of any literal kind.
func Order(lhs, rhs any, eps ...compare.Epsilon) (compare.Ordering, error) {
	l, err := widen(lhs)
	if err != nil {
		return compare.Unordered, err
	}
	switch l := l.(type) {
	case uint64:
		return orderWith(l, rhs, eps)
	case int64:
		return orderWith(l, rhs, eps)
	case float32:
		return orderWith(l, rhs, eps)
	default:
		return orderWith(l.(float64), rhs, eps)
	}
}

func orderWith[L numeric.Number](lhs L, rhs any, eps []compare.Epsilon) (compare.Ordering, error) {
	r, err := widen(rhs)
	if err != nil {
		return compare.Unordered, err
	}
	switch r := r.(type) {
	case uint64:
		return compare.Order(lhs, r, eps...), nil
	case int64:
		return compare.Order(lhs, r, eps...), nil
	case float32:
		return compare.Order(lhs, r, eps...), nil
	default:
		return compare.Order(lhs, r.(float64), eps...), nil
	}
}
