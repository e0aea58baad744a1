// SPDX-License-Identifier: MIT

//go:build riscv64

package platform

const (
	Architecture  = RISCV64
	CacheLineSize = 64
)
