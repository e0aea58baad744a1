// SPDX-License-Identifier: MIT

//go:build arm64

package platform

const (
	Architecture  = ARMv8
	CacheLineSize = 64
)
