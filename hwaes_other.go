//go:build !amd64 && !arm64

package aes256

// SupportsHardwareAES returns false on platforms without detection support.
func SupportsHardwareAES() bool {
	return false
}
