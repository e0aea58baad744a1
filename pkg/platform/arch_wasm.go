// SPDX-License-Identifier: MIT

//go:build wasm

package platform

const (
	Architecture  = WASM
	CacheLineSize = 64
)
