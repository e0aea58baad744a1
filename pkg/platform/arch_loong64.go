// SPDX-License-Identifier: MIT

//go:build loong64

package platform

const (
	Architecture  = LoongArch64
	CacheLineSize = 64
)
