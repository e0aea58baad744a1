// SPDX-License-Identifier: MIT
package numeric

import (
	"math"
	"strconv"
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		got  Type
		want Type
	}{
		{"uint8", Of[uint8](), Type{Unsigned, 8}},
		{"uint16", Of[uint16](), Type{Unsigned, 16}},
		{"uint32", Of[uint32](), Type{Unsigned, 32}},
		{"uint64", Of[uint64](), Type{Unsigned, 64}},
		{"uintptr", Of[uintptr](), Type{Unsigned, strconv.IntSize}},
		{"int8", Of[int8](), Type{Signed, 8}},
		{"int16", Of[int16](), Type{Signed, 16}},
		{"int32", Of[int32](), Type{Signed, 32}},
		{"int64", Of[int64](), Type{Signed, 64}},
		{"float32", Of[float32](), Type{Float, 32}},
		{"float64", Of[float64](), Type{Float, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Of[%s]() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	if got := Max[uint8](); got != math.MaxUint8 {
		t.Errorf("Max[uint8]() = %d, want %d", got, math.MaxUint8)
	}
	if got := Max[uint64](); got != math.MaxUint64 {
		t.Errorf("Max[uint64]() = %d, want %d", got, uint64(math.MaxUint64))
	}
	if got := Max[int8](); got != math.MaxInt8 {
		t.Errorf("Max[int8]() = %d, want %d", got, math.MaxInt8)
	}
	if got := Max[int32](); got != math.MaxInt32 {
		t.Errorf("Max[int32]() = %d, want %d", got, math.MaxInt32)
	}
	if got := Max[int64](); got != math.MaxInt64 {
		t.Errorf("Max[int64]() = %d, want %d", got, int64(math.MaxInt64))
	}
	if got := Min[int16](); got != math.MinInt16 {
		t.Errorf("Min[int16]() = %d, want %d", got, math.MinInt16)
	}
	if got := Min[uint32](); got != 0 {
		t.Errorf("Min[uint32]() = %d, want 0", got)
	}
}

func TestMachineEpsilon(t *testing.T) {
	if got, want := MachineEpsilon[float32](), float64(math.Nextafter32(1, 2)-1); got != want {
		t.Errorf("MachineEpsilon[float32]() = %g, want %g", got, want)
	}
	if got, want := MachineEpsilon[float64](), math.Nextafter(1, 2)-1; got != want {
		t.Errorf("MachineEpsilon[float64]() = %g, want %g", got, want)
	}
	if got := MachineEpsilon[int32](); got != Epsilon64 {
		t.Errorf("MachineEpsilon[int32]() = %g, want %g", got, Epsilon64)
	}
}

func TestWider(t *testing.T) {
	tests := []struct {
		a, b Type
		want Type
	}{
		{Of[int64](), Of[float32](), Of[float32]()},
		{Of[float64](), Of[uint8](), Of[float64]()},
		{Of[float32](), Of[float64](), Of[float64]()},
		{Of[int8](), Of[uint32](), Of[uint32]()},
		{Of[int16](), Of[int16](), Of[int16]()},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			if got := Wider(tt.a, tt.b); got != tt.want {
				t.Errorf("Wider(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func BenchmarkOf(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Of[int32]()
	}
}
