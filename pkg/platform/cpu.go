// SPDX-License-Identifier: MIT
package platform

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CPU describes the processor the program is running on. Unlike the other
// facts in this package it is detected at runtime.
type CPU struct {
	Architecture string
	HasSSE2      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	// CacheLinePad is the padding size the runtime uses for this CPU.
	CacheLinePad int
}

// DetectCPU reports the available CPU features for the current process.
func DetectCPU() CPU {
	return CPU{
		Architecture: runtime.GOARCH,
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		CacheLinePad: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
}
