// SPDX-License-Identifier: MIT

//go:build release

package platform

const (
	ModeIsDebug   = false
	ModeIsRelease = true
)
