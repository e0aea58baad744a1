// SPDX-License-Identifier: MIT
package platform

const (
	// HasThreeWayCompare reports cmp.Compare availability.
	HasThreeWayCompare = true
	// HasSourceLocation reports runtime.Caller availability.
	HasSourceLocation = true
)
