// SPDX-License-Identifier: MIT

//go:build !amd64 && !386 && !arm && !arm64 && !riscv64 && !ppc64 && !ppc64le && !mips && !mipsle && !mips64 && !mips64le && !mips64p32 && !mips64p32le && !loong64 && !s390x && !wasm

package platform

// Unrecognized targets still build. They get the Unknown tag and the widest
// cache line bucket.
const (
	Architecture  = Unknown
	CacheLineSize = 128
)
