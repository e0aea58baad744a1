// SPDX-License-Identifier: MIT

//go:build gccgo

package platform

// gccgo ships its own runtime, libgo, built from the same sources as the
// standard library.
const (
	CompilerIsGC     = false
	CompilerIsGCCGo  = true
	CompilerIsTinyGo = false
	Compiler         = "gccgo"

	StdLibIsGo     = true
	StdLibIsTinyGo = false
	StdLib         = "libgo"
)
