// SPDX-License-Identifier: MIT

//go:build amd64

package platform

const (
	Architecture  = X86_64
	CacheLineSize = 64
)
