// SPDX-License-Identifier: MIT

//go:build go1.25

package platform

// HasWaitGroupGo reports whether sync.WaitGroup has the Go method.
const HasWaitGroupGo = true
