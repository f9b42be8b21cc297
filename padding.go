package aes256

// Pad appends PKCS#7 padding to data. Between 1 and blockSize bytes are always
// added, each holding the pad length, so aligned input gains a whole block.
func Pad(data []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 255 {
		panic("Pad: blockSize must be in [1, 255]")
	}

	padLen := blockSize - len(data)%blockSize
	result := make([]byte, len(data)+padLen)
	copy(result, data)
	for i := len(data); i < len(result); i++ {
		result[i] = byte(padLen)
	}
	return result
}

// Unpad strips PKCS#7 padding. The final byte must be in [1, blockSize], no
// longer than data, and every pad byte must carry the same value.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		panic("Unpad: blockSize must be in [1, 255]")
	}
	if len(data) == 0 {
		return nil, ErrInvalidPadding
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}
