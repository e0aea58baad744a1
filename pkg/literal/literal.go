// SPDX-License-Identifier: MIT

/*
Package literal parses numeric literal text into values of an exact Go type,
with bounds checking and a fixed status taxonomy.

A literal is a non-negative digit sequence with an optional base prefix:

	0x / 0X   hexadecimal
	0b / 0B   binary
	0         octal (integers only, and only when more characters follow)

Digit groups may be separated with ' or _ and the separators are ignored, so
"64'000", "64_000" and "64000" parse to the same value. Float kinds accept a
decimal point, and decimal floats also accept an exponent.

Negative values are produced by the caller negating the parsed value:

	offset := -literal.MustI64("0xDEAD'BEEF")

Every parse yields a Result whose Status is Valid, OutOfRange,
InvalidCharacterSequence or InvalidLiteralType. The value is never silently
truncated.

OutOfRange means the magnitude exceeds the largest finite value of the
target type. Float literals too small to represent round to the nearest
subnormal or to zero, as IEEE 754 conversion does, and stay Valid:

	literal.Parse[float64]("1e-400") // {Valid 0}
*/
package literal

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"hyperion/internal/numeric"
)

// Result pairs a parse Status with the parsed value. Value is the zero value
// unless Status is Valid.
type Result[T numeric.Number] struct {
	Status Status
	Value  T
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool {
	return r.Status == Valid
}

// Err returns nil for a Valid result and the Status sentinel otherwise.
func (r Result[T]) Err() error {
	return r.Status.Err()
}

// Parse parses lit as a value of type T.
func Parse[T numeric.Number](lit string) Result[T] {
	typ := numeric.Of[T]()
	if typ.Class == numeric.Float {
		return parseFloat[T](lit, typ.Bits)
	}
	return parseInteger[T](lit)
}

// Must parses lit as a value of type T and panics with the status diagnostic
// if the literal is not Valid. It is meant for package-level initialization,
// where a bad literal must stop the program before it runs.
func Must[T numeric.Number](lit string) T {
	r := Parse[T](lit)
	if r.Status != Valid {
		panic(errors.Wrapf(r.Status.Err(), "invalid literal %q", lit))
	}
	return r.Value
}

func isSeparator(c byte) bool {
	return c == '\'' || c == '_'
}

// base splits the prefix from lit and returns the radix to use.
func base(lit string, float bool) (uint64, string) {
	if len(lit) > 2 && lit[0] == '0' {
		switch lit[1] {
		case 'x', 'X':
			return 16, lit[2:]
		case 'b', 'B':
			return 2, lit[2:]
		}
	}
	if !float && len(lit) > 1 && lit[0] == '0' {
		return 8, lit[1:]
	}
	return 10, lit
}

// digit returns the value of c in the given base.
func digit(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

// validate checks every non-separator character of digits against the
// character set of base. A single '.' is allowed when point is true.
func validate(digits string, base uint64, point bool) Status {
	var seen, dot bool
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case isSeparator(c):
		case c == '.' && point && !dot:
			dot = true
		default:
			if _, ok := digit(c, base); !ok {
				return InvalidCharacterSequence
			}
			seen = true
		}
	}
	if !seen {
		return InvalidCharacterSequence
	}
	return Valid
}

func parseInteger[T numeric.Number](lit string) Result[T] {
	b, digits := base(lit, false)
	if s := validate(digits, b, false); s != Valid {
		return Result[T]{Status: s}
	}

	var limit uint64
	if numeric.IsSigned[T]() {
		limit = uint64(1)<<(numeric.Of[T]().Bits-1) - 1
	} else {
		limit = uint64(math.MaxUint64) >> (64 - numeric.Of[T]().Bits)
	}

	sum, s := accumulate(digits, b, limit)
	if s != Valid {
		return Result[T]{Status: s}
	}
	return Result[T]{Status: Valid, Value: T(sum)}
}

// accumulate sums validated digits from least to most significant, checking
// each addition against limit.
func accumulate(digits string, base, limit uint64) (uint64, Status) {
	var sum uint64
	mult := uint64(1)
	// Set once base^position no longer fits in 64 bits. Only zero digits
	// may appear past that point.
	wide := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if isSeparator(c) {
			continue
		}
		d, _ := digit(c, base)
		if d != 0 {
			if wide {
				return 0, OutOfRange
			}
			hi, v := bits.Mul64(d, mult)
			if hi != 0 || v > limit-sum {
				return 0, OutOfRange
			}
			sum += v
		}
		if !wide {
			hi, next := bits.Mul64(mult, base)
			if hi != 0 {
				wide = true
			}
			mult = next
		}
	}
	return sum, Valid
}

func parseFloat[T numeric.Number](lit string, size int) Result[T] {
	b, digits := base(lit, true)
	if b == 10 {
		return parseDecimalFloat[T](lit, size)
	}
	if s := validate(digits, b, true); s != Valid {
		return Result[T]{Status: s}
	}

	limit := math.MaxFloat64
	if size == 32 {
		limit = math.MaxFloat32
	}

	// Hex and binary digits are powers of two wide, so every place value is
	// exact: digit i from the right sits at 2^(shift*(i-fraction)).
	shift := bits.TrailingZeros64(b)
	fraction := 0
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		for i := dot + 1; i < len(digits); i++ {
			if !isSeparator(digits[i]) {
				fraction++
			}
		}
	}

	var sum float64
	place := -fraction
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if isSeparator(c) || c == '.' {
			continue
		}
		if d, _ := digit(c, b); d != 0 {
			v := math.Ldexp(float64(d), shift*place)
			if math.IsInf(v, 0) || sum > limit-v {
				return Result[T]{Status: OutOfRange}
			}
			sum += v
		}
		place++
	}
	val := T(sum)
	if math.IsInf(float64(val), 0) {
		return Result[T]{Status: OutOfRange}
	}
	return Result[T]{Status: Valid, Value: val}
}

// parseDecimalFloat defers to strconv for correctly rounded decimal
// conversion once the character set has been checked.
func parseDecimalFloat[T numeric.Number](lit string, size int) Result[T] {
	var (
		sb       strings.Builder
		seen     bool
		dot      bool
		exponent bool
	)
	sb.Grow(len(lit))
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		switch {
		case isSeparator(c):
			continue
		case c >= '0' && c <= '9':
			seen = true
		case c == '.' && !dot && !exponent:
			dot = true
		case (c == 'e' || c == 'E') && seen && !exponent:
			exponent = true
		case (c == '+' || c == '-') && i > 0 && (lit[i-1] == 'e' || lit[i-1] == 'E'):
		default:
			return Result[T]{Status: InvalidCharacterSequence}
		}
		sb.WriteByte(c)
	}
	if !seen {
		return Result[T]{Status: InvalidCharacterSequence}
	}

	v, err := strconv.ParseFloat(sb.String(), size)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Result[T]{Status: OutOfRange}
		}
		return Result[T]{Status: InvalidCharacterSequence}
	}
	return Result[T]{Status: Valid, Value: T(v)}
}
