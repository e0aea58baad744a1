// SPDX-License-Identifier: MIT
package platform

import "runtime"

const (
	IsWindows = runtime.GOOS == "windows"
	IsApple   = runtime.GOOS == "darwin" || runtime.GOOS == "ios"
	IsAndroid = runtime.GOOS == "android"
	// IsLinux includes Android, which runs a Linux kernel.
	IsLinux = runtime.GOOS == "linux" || IsAndroid
	IsBSD   = runtime.GOOS == "freebsd" || runtime.GOOS == "netbsd" ||
		runtime.GOOS == "openbsd" || runtime.GOOS == "dragonfly"
	IsUnix = IsLinux || IsApple || IsBSD || runtime.GOOS == "aix" ||
		runtime.GOOS == "hurd" || runtime.GOOS == "illumos" || runtime.GOOS == "solaris"
	IsWASM = runtime.GOOS == "js" || runtime.GOOS == "wasip1"
)

// OS returns the name of the target operating system.
func OS() string {
	return runtime.GOOS
}
