// SPDX-License-Identifier: MIT

//go:build mips || mipsle || mips64p32 || mips64p32le

package platform

const (
	Architecture  = MIPS
	CacheLineSize = 32
)
