// SPDX-License-Identifier: MIT
package literal

import (
	"github.com/pkg/errors"

	"hyperion/internal/numeric"
)

// parseNamed runs Parse and wraps a failing status with the kind and literal.
func parseNamed[T numeric.Number](kind Kind, lit string) (T, error) {
	r := Parse[T](lit)
	if r.Status != Valid {
		var zero T
		return zero, errors.Wrapf(r.Status.Err(), "%s literal %q", kind, lit)
	}
	return r.Value, nil
}

func mustNamed[T numeric.Number](kind Kind, lit string) T {
	v, err := parseNamed[T](kind, lit)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseKind parses lit as the Go type that kind maps to and returns it boxed.
// An invalid kind reports ErrInvalidLiteralType.
func ParseKind(kind Kind, lit string) (any, error) {
	switch kind {
	case KindByte:
		return Byte(lit)
	case KindU8:
		return U8(lit)
	case KindU16:
		return U16(lit)
	case KindU32:
		return U32(lit)
	case KindU64:
		return U64(lit)
	case KindUSize:
		return USize(lit)
	case KindUMax:
		return UMax(lit)
	case KindI8:
		return I8(lit)
	case KindI16:
		return I16(lit)
	case KindI32:
		return I32(lit)
	case KindI64:
		return I64(lit)
	case KindIMax:
		return IMax(lit)
	case KindF32:
		return F32(lit)
	case KindF64:
		return F64(lit)
	case KindFMax:
		return FMax(lit)
	default:
		return nil, errors.Wrapf(ErrInvalidLiteralType, "kind %d literal %q", uint8(kind), lit)
	}
}

// Named parsers, one per Kind. Each returns the parsed value, or an error
// wrapping the Status sentinel. The Must variants panic where their twins
// would return an error.

// Byte parses lit as a byte.
func Byte(lit string) (byte, error) { return parseNamed[byte](KindByte, lit) }

// U8 parses lit as a uint8.
func U8(lit string) (uint8, error) { return parseNamed[uint8](KindU8, lit) }

// U16 parses lit as a uint16.
func U16(lit string) (uint16, error) { return parseNamed[uint16](KindU16, lit) }

// U32 parses lit as a uint32.
func U32(lit string) (uint32, error) { return parseNamed[uint32](KindU32, lit) }

// U64 parses lit as a uint64.
func U64(lit string) (uint64, error) { return parseNamed[uint64](KindU64, lit) }

// USize parses lit as a uint, the platform word.
func USize(lit string) (uint, error) { return parseNamed[uint](KindUSize, lit) }

// UMax parses lit as the widest unsigned type, uint64.
func UMax(lit string) (uint64, error) { return parseNamed[uint64](KindUMax, lit) }

// I8 parses lit as an int8.
func I8(lit string) (int8, error) { return parseNamed[int8](KindI8, lit) }

// I16 parses lit as an int16.
func I16(lit string) (int16, error) { return parseNamed[int16](KindI16, lit) }

// I32 parses lit as an int32.
func I32(lit string) (int32, error) { return parseNamed[int32](KindI32, lit) }

// I64 parses lit as an int64.
func I64(lit string) (int64, error) { return parseNamed[int64](KindI64, lit) }

// IMax parses lit as the widest signed type, int64.
func IMax(lit string) (int64, error) { return parseNamed[int64](KindIMax, lit) }

// F32 parses lit as a float32.
func F32(lit string) (float32, error) { return parseNamed[float32](KindF32, lit) }

// F64 parses lit as a float64.
func F64(lit string) (float64, error) { return parseNamed[float64](KindF64, lit) }

// FMax parses lit as the widest float type, float64.
func FMax(lit string) (float64, error) { return parseNamed[float64](KindFMax, lit) }

// MustByte is like Byte but panics if lit is not Valid.
func MustByte(lit string) byte { return mustNamed[byte](KindByte, lit) }

// MustU8 is like U8 but panics if lit is not Valid.
func MustU8(lit string) uint8 { return mustNamed[uint8](KindU8, lit) }

// MustU16 is like U16 but panics if lit is not Valid.
func MustU16(lit string) uint16 { return mustNamed[uint16](KindU16, lit) }

// MustU32 is like U32 but panics if lit is not Valid.
func MustU32(lit string) uint32 { return mustNamed[uint32](KindU32, lit) }

// MustU64 is like U64 but panics if lit is not Valid.
func MustU64(lit string) uint64 { return mustNamed[uint64](KindU64, lit) }

// MustUSize is like USize but panics if lit is not Valid.
func MustUSize(lit string) uint { return mustNamed[uint](KindUSize, lit) }

// MustUMax is like UMax but panics if lit is not Valid.
func MustUMax(lit string) uint64 { return mustNamed[uint64](KindUMax, lit) }

// MustI8 is like I8 but panics if lit is not Valid.
func MustI8(lit string) int8 { return mustNamed[int8](KindI8, lit) }

// MustI16 is like I16 but panics if lit is not Valid.
func MustI16(lit string) int16 { return mustNamed[int16](KindI16, lit) }

// MustI32 is like I32 but panics if lit is not Valid.
func MustI32(lit string) int32 { return mustNamed[int32](KindI32, lit) }

// MustI64 is like I64 but panics if lit is not Valid.
func MustI64(lit string) int64 { return mustNamed[int64](KindI64, lit) }

// MustIMax is like IMax but panics if lit is not Valid.
func MustIMax(lit string) int64 { return mustNamed[int64](KindIMax, lit) }

// MustF32 is like F32 but panics if lit is not Valid.
func MustF32(lit string) float32 { return mustNamed[float32](KindF32, lit) }

// MustF64 is like F64 but panics if lit is not Valid.
func MustF64(lit string) float64 { return mustNamed[float64](KindF64, lit) }

// MustFMax is like FMax but panics if lit is not Valid.
func MustFMax(lit string) float64 { return mustNamed[float64](KindFMax, lit) }
