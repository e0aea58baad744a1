// SPDX-License-Identifier: MIT

//go:build amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm

package platform

const (
	IsLittleEndian = true
	IsBigEndian    = false
)
