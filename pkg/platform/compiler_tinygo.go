// SPDX-License-Identifier: MIT

//go:build tinygo

package platform

const (
	CompilerIsGC     = false
	CompilerIsGCCGo  = false
	CompilerIsTinyGo = true
	Compiler         = "tinygo"

	StdLibIsGo     = false
	StdLibIsTinyGo = true
	StdLib         = "tinygo"
)
