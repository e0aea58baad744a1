// SPDX-License-Identifier: MIT

//go:build ppc64 || ppc64le

package platform

const (
	Architecture  = PPC64
	CacheLineSize = 128
)
