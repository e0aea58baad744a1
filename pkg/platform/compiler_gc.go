// SPDX-License-Identifier: MIT

//go:build gc && !tinygo

package platform

const (
	CompilerIsGC     = true
	CompilerIsGCCGo  = false
	CompilerIsTinyGo = false
	Compiler         = "gc"

	StdLibIsGo     = true
	StdLibIsTinyGo = false
	StdLib         = "go"
)
