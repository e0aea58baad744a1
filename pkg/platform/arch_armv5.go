// SPDX-License-Identifier: MIT

//go:build arm && !arm.6

package platform

const (
	Architecture  = ARMv5
	CacheLineSize = 32
)
