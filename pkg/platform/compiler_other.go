// SPDX-License-Identifier: MIT

//go:build !gc && !gccgo && !tinygo

package platform

const (
	CompilerIsGC     = false
	CompilerIsGCCGo  = false
	CompilerIsTinyGo = false
	Compiler         = "unknown"

	StdLibIsGo     = false
	StdLibIsTinyGo = false
	StdLib         = "unknown"
)
