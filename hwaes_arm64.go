//go:build arm64

package aes256

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hasAES indicates if the CPU supports the ARMv8 AES instructions
var hasAES = cpu.ARM64.HasAES || runtime.GOOS == "darwin"

// SupportsHardwareAES reports whether the CPU has AES instructions. Apple Silicon
// always does, even where feature detection comes back empty.
//
// The cipher in this package never uses them; the result is informational.
func SupportsHardwareAES() bool {
	return hasAES
}
