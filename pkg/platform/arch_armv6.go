// SPDX-License-Identifier: MIT

//go:build arm && arm.6 && !arm.7

package platform

const (
	Architecture  = ARMv6
	CacheLineSize = 32
)
