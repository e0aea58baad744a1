// SPDX-License-Identifier: MIT
package platform

import (
	"runtime"
	"strconv"
)

// Facts is a snapshot of every platform fact, for reporting.
type Facts struct {
	OS             string
	IsWindows      bool
	IsApple        bool
	IsUnix         bool
	IsLinux        bool
	IsBSD          bool
	IsAndroid      bool
	IsWASM         bool
	Compiler       string
	StdLib         string
	GoVersion      string
	Architecture   Arch
	WordBits       int
	CacheLineSize  int
	IsLittleEndian bool
	IsBigEndian    bool
	ModeIsDebug    bool
	ModeIsRelease  bool

	HasThreeWayCompare bool
	HasSourceLocation  bool
	HasWaitGroupGo     bool

	CPU CPU
}

// Entry is a single named fact rendered as text.
type Entry struct {
	Section string
	Name    string
	Value   string
}

// Current returns the facts of the running binary.
func Current() Facts {
	return Facts{
		OS:             runtime.GOOS,
		IsWindows:      IsWindows,
		IsApple:        IsApple,
		IsUnix:         IsUnix,
		IsLinux:        IsLinux,
		IsBSD:          IsBSD,
		IsAndroid:      IsAndroid,
		IsWASM:         IsWASM,
		Compiler:       Compiler,
		StdLib:         StdLib,
		GoVersion:      runtime.Version(),
		Architecture:   Architecture,
		WordBits:       WordBits,
		CacheLineSize:  CacheLineSize,
		IsLittleEndian: IsLittleEndian,
		IsBigEndian:    IsBigEndian,
		ModeIsDebug:    ModeIsDebug,
		ModeIsRelease:  ModeIsRelease,

		HasThreeWayCompare: HasThreeWayCompare,
		HasSourceLocation:  HasSourceLocation,
		HasWaitGroupGo:     HasWaitGroupGo,

		CPU: DetectCPU(),
	}
}

func (f Facts) endianness() string {
	if f.IsLittleEndian {
		return "little"
	}
	return "big"
}

func (f Facts) mode() string {
	if f.ModeIsDebug {
		return "debug"
	}
	return "release"
}

// Entries flattens f into ordered, grouped rows.
func (f Facts) Entries() []Entry {
	b := strconv.FormatBool
	return []Entry{
		{"os", "name", f.OS},
		{"os", "windows", b(f.IsWindows)},
		{"os", "apple", b(f.IsApple)},
		{"os", "unix", b(f.IsUnix)},
		{"os", "linux", b(f.IsLinux)},
		{"os", "bsd", b(f.IsBSD)},
		{"os", "android", b(f.IsAndroid)},
		{"os", "wasm", b(f.IsWASM)},
		{"toolchain", "compiler", f.Compiler},
		{"toolchain", "stdlib", f.StdLib},
		{"toolchain", "version", f.GoVersion},
		{"toolchain", "mode", f.mode()},
		{"features", "three-way compare", b(f.HasThreeWayCompare)},
		{"features", "source location", b(f.HasSourceLocation)},
		{"features", "waitgroup.go", b(f.HasWaitGroupGo)},
		{"arch", "name", f.Architecture.String()},
		{"arch", "word bits", strconv.Itoa(f.WordBits)},
		{"arch", "cache line", strconv.Itoa(f.CacheLineSize)},
		{"arch", "endianness", f.endianness()},
		{"cpu", "goarch", f.CPU.Architecture},
		{"cpu", "sse2", b(f.CPU.HasSSE2)},
		{"cpu", "sse4.1", b(f.CPU.HasSSE41)},
		{"cpu", "avx", b(f.CPU.HasAVX)},
		{"cpu", "avx2", b(f.CPU.HasAVX2)},
		{"cpu", "avx512", b(f.CPU.HasAVX512)},
		{"cpu", "neon", b(f.CPU.HasNEON)},
		{"cpu", "pad", strconv.Itoa(f.CPU.CacheLinePad)},
	}
}
