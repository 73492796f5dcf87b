package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MarkExecutable sets the executable bits on a generated script.
func MarkExecutable(path string) error {
	return Chmod(path, 0755)
}

// IsWindows reports whether the current OS is Windows. Split out so callers
// read as policy ("which build helper do I run") rather than runtime checks.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}
