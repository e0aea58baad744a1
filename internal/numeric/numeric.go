// SPDX-License-Identifier: MIT

// Package numeric classifies the built-in integer and floating point types at
// runtime without reflection. The checks rely only on arithmetic properties of
// the type parameter, so they inline to constants after instantiation.
package numeric

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number represents all int, uint and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Machine epsilon for the two IEEE 754 widths Go supports.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// Class is the arithmetic family of a Number type.
type Class uint8

const (
	Unsigned Class = iota
	Signed
	Float
)

func (c Class) String() string {
	switch c {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Type describes a Number type by class and width.
type Type struct {
	Class Class
	Bits  int
}

func (t Type) String() string {
	switch t.Class {
	case Unsigned:
		return "u" + strconv.Itoa(t.Bits)
	case Signed:
		return "i" + strconv.Itoa(t.Bits)
	default:
		return "f" + strconv.Itoa(t.Bits)
	}
}

// Of returns the class and width of T.
func Of[T Number]() Type {
	var t T
	bits := int(unsafe.Sizeof(t)) * 8
	switch {
	case IsFloat[T]():
		return Type{Class: Float, Bits: bits}
	case IsSigned[T]():
		return Type{Class: Signed, Bits: bits}
	default:
		return Type{Class: Unsigned, Bits: bits}
	}
}

// IsFloat returns true if T is a floating point type.
func IsFloat[T Number]() bool {
	// Integer division truncates one half to zero.
	var h T = 1
	h /= 2
	return h != 0
}

// IsSigned returns true if T can hold negative values. Floats are signed.
func IsSigned[T Number]() bool {
	var v T
	v--
	return v < 0
}

// IsInteger returns true if T is an integer type.
func IsInteger[T Number]() bool {
	return !IsFloat[T]()
}

// Max returns the largest value an integer type T can hold.
func Max[T constraints.Integer]() T {
	var v T
	v--
	if v > 0 {
		// Unsigned decrement wrapped to all ones.
		return v
	}
	bits := uint(unsafe.Sizeof(v)) * 8
	return T(uint64(1)<<(bits-1) - 1)
}

// Min returns the smallest value an integer type T can hold.
func Min[T constraints.Integer]() T {
	var v T
	v--
	if v > 0 {
		return 0
	}
	return -Max[T]() - 1
}

// MachineEpsilon returns the gap between 1 and the next representable value
// for float types. Integer types report the float64 epsilon, the width they are
// promoted to when compared against floats.
func MachineEpsilon[T Number]() float64 {
	if t := Of[T](); t.Class == Float && t.Bits == 32 {
		return Epsilon32
	}
	return Epsilon64
}

// Wider returns the operand type that dominates a mixed comparison. Floats win
// over integers, and the larger width wins within a class.
func Wider(a, b Type) Type {
	switch {
	case a.Class == Float && b.Class != Float:
		return a
	case b.Class == Float && a.Class != Float:
		return b
	case b.Bits > a.Bits:
		return b
	default:
		return a
	}
}
