// SPDX-License-Identifier: MIT
package literal

import (
	"strings"

	"hyperion/internal/numeric"
)

// Kind names a literal target type. Each Kind maps to exactly one Go type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindByte
	KindU8
	KindU16
	KindU32
	KindU64
	KindUSize
	KindUMax
	KindI8
	KindI16
	KindI32
	KindI64
	KindIMax
	KindF32
	KindF64
	KindFMax
)

type kindInfo struct {
	name   string
	goType string
	typ    numeric.Type
}

var kinds = [...]kindInfo{
	KindInvalid: {name: "invalid"},
	KindByte:    {"byte", "byte", numeric.Of[byte]()},
	KindU8:      {"u8", "uint8", numeric.Of[uint8]()},
	KindU16:     {"u16", "uint16", numeric.Of[uint16]()},
	KindU32:     {"u32", "uint32", numeric.Of[uint32]()},
	KindU64:     {"u64", "uint64", numeric.Of[uint64]()},
	KindUSize:   {"usize", "uint", numeric.Of[uint]()},
	KindUMax:    {"umax", "uint64", numeric.Of[uint64]()},
	KindI8:      {"i8", "int8", numeric.Of[int8]()},
	KindI16:     {"i16", "int16", numeric.Of[int16]()},
	KindI32:     {"i32", "int32", numeric.Of[int32]()},
	KindI64:     {"i64", "int64", numeric.Of[int64]()},
	KindIMax:    {"imax", "int64", numeric.Of[int64]()},
	KindF32:     {"f32", "float32", numeric.Of[float32]()},
	KindF64:     {"f64", "float64", numeric.Of[float64]()},
	KindFMax:    {"fmax", "float64", numeric.Of[float64]()},
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindByte; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

// String returns the suffix name of k, e.g. "u32".
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return kinds[k].name
}

// Valid reports whether k names a numeric literal type.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kinds)
}

// GoType returns the Go type name values of this kind are stored in.
func (k Kind) GoType() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].goType
}

// Type returns the numeric class and width of k.
func (k Kind) Type() numeric.Type {
	if !k.Valid() {
		return numeric.Type{}
	}
	return kinds[k].typ
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k.Valid() && kinds[k].typ.Class == numeric.Float
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k.Valid() && kinds[k].typ.Class == numeric.Signed
}

// KindOf looks up a Kind by suffix name. A leading underscore is accepted so
// "_u32" and "u32" both resolve. Unknown names return KindInvalid.
func KindOf(name string) Kind {
	name = strings.ToLower(strings.TrimPrefix(name, "_"))
	for k := KindByte; int(k) < len(kinds); k++ {
		if kinds[k].name == name {
			return k
		}
	}
	return KindInvalid
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// KindInvalid rather than failing, so parsing reports InvalidLiteralType.
func (k *Kind) UnmarshalText(b []byte) error {
	*k = KindOf(string(b))
	return nil
}
