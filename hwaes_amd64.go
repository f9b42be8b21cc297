//go:build amd64

package aes256

import "golang.org/x/sys/cpu"

// SupportsHardwareAES reports whether the CPU has AES-NI.
//
// The cipher in this package never uses it; the result is informational.
func SupportsHardwareAES() bool {
	return cpu.X86.HasAES
}
