// SPDX-License-Identifier: MIT

//go:build arm && arm.7

package platform

const (
	Architecture  = ARMv7A
	CacheLineSize = 32
)
