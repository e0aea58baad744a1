// SPDX-License-Identifier: MIT

//go:build s390x

package platform

const (
	Architecture  = S390X
	CacheLineSize = 128
)
