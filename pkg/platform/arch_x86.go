// SPDX-License-Identifier: MIT

//go:build 386

package platform

const (
	Architecture  = X86
	CacheLineSize = 32
)
