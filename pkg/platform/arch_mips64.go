// SPDX-License-Identifier: MIT

//go:build mips64 || mips64le

package platform

const (
	Architecture  = MIPS64
	CacheLineSize = 32
)
