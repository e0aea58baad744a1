// SPDX-License-Identifier: MIT

//go:build !release

package platform

// Builds are debug builds unless the release tag is set.
const (
	ModeIsDebug   = true
	ModeIsRelease = false
)
