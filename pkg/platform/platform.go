// SPDX-License-Identifier: MIT

/*
Package platform exposes build-time facts about the target: operating system,
compiler, standard library, CPU architecture, endianness, build mode, and
feature availability.

Every fact is a constant selected by build constraints or derived from the
runtime package constants, so it costs nothing at runtime and can gate code
paths the compiler will eliminate:

	if platform.IsArchitecture(platform.ARMv7) {
		// any ARMv7 sub-variant
	}

No fact ever fails to resolve. Unrecognized targets report false, or the
Unknown architecture tag.
*/
package platform

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"hyperion/pkg/bitint"
)

// Arch is a CPU architecture tag. Sub-family tags carry their parent family
// bits, so intersection queries match any more specific variant.
type Arch uint32

const (
	X86_64      Arch = 1 << 1
	X86         Arch = 1 << 2
	RISCV64     Arch = 1 << 3
	PPC64       Arch = 1 << 4
	MIPS        Arch = 1 << 5
	LoongArch64 Arch = 1 << 6
	ARMv6       Arch = 1 << 7
	ARMv7       Arch = 1 << 8
	ARMv7A      Arch = ARMv7 | 1<<9
	ARMv7R      Arch = ARMv7 | ARMv7A | 1<<10
	ARMv7M      Arch = ARMv7 | ARMv7A | ARMv7R | 1<<11
	ARMv7S      Arch = ARMv7 | ARMv7A | ARMv7R | 1<<12
	ARMv8       Arch = 1 << 13
	Unknown     Arch = 1 << 14
	ARMv5       Arch = 1 << 15
	S390X       Arch = 1 << 16
	WASM        Arch = 1 << 17
	MIPS64      Arch = MIPS | 1<<18

	ARM64 = ARMv8
	// ARM matches every ARM generation.
	ARM = ARMv5 | ARMv6 | ARMv7 | ARMv8
)

var archNames = map[Arch]string{
	X86_64:      "x86_64",
	X86:         "x86",
	RISCV64:     "riscv64",
	PPC64:       "ppc64",
	MIPS:        "mips",
	MIPS64:      "mips64",
	LoongArch64: "loong64",
	ARMv5:       "armv5",
	ARMv6:       "armv6",
	ARMv7:       "armv7",
	ARMv7A:      "armv7a",
	ARMv7R:      "armv7r",
	ARMv7M:      "armv7m",
	ARMv7S:      "armv7s",
	ARMv8:       "armv8",
	S390X:       "s390x",
	WASM:        "wasm",
	Unknown:     "unknown",
}

func (a Arch) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return "arch(0x" + strconv.FormatUint(uint64(a), 16) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (a Arch) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for names produced by
// String.
func (a *Arch) UnmarshalText(text []byte) error {
	name := string(text)
	for arch, n := range archNames {
		if n == name {
			*a = arch
			return nil
		}
	}
	hex, ok := strings.CutPrefix(strings.TrimSuffix(name, ")"), "arch(0x")
	if !ok {
		return errors.Errorf("unknown architecture %q", name)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return errors.Wrapf(err, "unknown architecture %q", name)
	}
	*a = Arch(v)
	return nil
}

// IsArchitecture reports whether the build target belongs to a. Passing a
// family tag such as ARMv7 matches every ARMv7 sub-variant.
func IsArchitecture(a Arch) bool {
	return Architecture&a != 0
}

// Is reports whether a belongs to family.
func (a Arch) Is(family Arch) bool {
	return a&family != 0
}

// Bits returns the native word width of the architecture, or 0 for Unknown.
func (a Arch) Bits() int {
	switch {
	case a&MIPS64 == MIPS64, a.Is(X86_64 | ARMv8 | RISCV64 | PPC64 | LoongArch64 | S390X | WASM):
		return 64
	case a.Is(X86 | ARM | MIPS):
		return 32
	default:
		return 0
	}
}

// CacheLineSizeOf returns the assumed L1 cache line size for a. Unrecognized
// tags fall into the conservative 128 byte bucket.
func CacheLineSizeOf(a Arch) int {
	switch {
	case a == Unknown:
		return 128
	case a.Is(X86_64 | ARMv8 | RISCV64 | LoongArch64 | WASM):
		return 64
	case a.Is(X86 | ARMv5 | ARMv6 | ARMv7 | MIPS):
		return 32
	default:
		return 128
	}
}

// Resolve maps a GOARCH value and an optional ARM variant to an Arch tag using
// the same priority the build constraint files encode. variant accepts GOARM
// style values ("5", "6", "7") and the ARMv7 profiles "7a", "7r", "7m" and
// "7s". A ",softfloat" or ",hardfloat" suffix is ignored. An empty variant
// carries no arm.6 feature tag, so it resolves to ARMv5 like the build files.
func Resolve(goarch, variant string) Arch {
	switch goarch {
	case "amd64", "amd64p32":
		return X86_64
	case "386":
		return X86
	case "arm":
		return resolveARM(variant)
	case "arm64", "arm64be":
		return ARMv8
	case "riscv64":
		return RISCV64
	case "ppc64", "ppc64le":
		return PPC64
	case "mips64", "mips64le":
		return MIPS64
	case "mips", "mipsle", "mips64p32", "mips64p32le":
		return MIPS
	case "loong64":
		return LoongArch64
	case "s390x":
		return S390X
	case "wasm":
		return WASM
	default:
		return Unknown
	}
}

func resolveARM(variant string) Arch {
	variant, _, _ = strings.Cut(strings.ToLower(strings.TrimSpace(variant)), ",")
	variant = strings.TrimPrefix(strings.TrimPrefix(variant, "armv"), "v")
	switch variant {
	case "7s":
		return ARMv7S
	case "7m":
		return ARMv7M
	case "7r":
		return ARMv7R
	case "7a", "7":
		return ARMv7A
	case "6":
		return ARMv6
	case "5", "":
		return ARMv5
	default:
		return Unknown
	}
}

// WordBits is the width of uint on the build target.
const WordBits = 32 << (^uint(0) >> 63)

// Pad is a cache line sized spacer for separating hot fields.
type Pad [CacheLineSize]byte

// PaddedSize rounds n up to a whole number of cache lines.
func PaddedSize(n int) int {
	return bitint.AlignUp(n, CacheLineSize)
}
