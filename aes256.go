// Package aes256 implements the AES-256 block cipher from first principles and an
// ECB encryption pipeline with PKCS#7 padding over hex-encoded ciphertext.
//
// The implementation is a reference one: table lookups and branches depend on
// secret data, there is no IV or authentication, and ECB leaks equality of
// plaintext blocks. Do not use it to protect real data.
package aes256

import (
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Algorithm parameters
const (
	KeyLen   = 32 // 256 bits
	BlockLen = 16 // 128 bits
	Rounds   = 14
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeyLen bytes.
	ErrInvalidKeyLength = errors.New("aes256: key must be 32 bytes")
	// ErrInvalidCiphertext is returned for ciphertext that is not hex or not a
	// non-empty whole number of blocks.
	ErrInvalidCiphertext = errors.New("aes256: invalid ciphertext")
	// ErrInvalidPadding is returned when decrypted data does not end in valid
	// PKCS#7 padding.
	ErrInvalidPadding = errors.New("aes256: invalid padding")
	// ErrInvalidText is returned when decrypted data is not valid UTF-8.
	ErrInvalidText = errors.New("aes256: plaintext is not valid UTF-8")
)

// EncryptBytes pads plaintext and encrypts it block by block under key in ECB
// mode. The result is a non-zero multiple of BlockLen bytes.
func EncryptBytes(plaintext, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := Pad(plaintext, BlockLen)
	NewECBEncrypter(c).CryptBlocks(padded, padded)
	return padded, nil
}

// DecryptBytes decrypts ECB ciphertext under key and strips its padding.
func DecryptBytes(ciphertext, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockLen != 0 {
		return nil, ErrInvalidCiphertext
	}

	plaintext := make([]byte, len(ciphertext))
	NewECBDecrypter(c).CryptBlocks(plaintext, ciphertext)
	return Unpad(plaintext, BlockLen)
}

// Encrypt encrypts a text message under a 32-byte text key and returns the
// ciphertext as lowercase hex, 32 characters per block.
func Encrypt(plaintext, key string) (string, error) {
	ct, err := EncryptBytes([]byte(plaintext), []byte(key))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt. The key must match the one used to encrypt.
func Decrypt(ciphertext, key string) (string, error) {
	if len(key) != KeyLen {
		return "", ErrInvalidKeyLength
	}

	ct, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	pt, err := DecryptBytes(ct, []byte(key))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(pt) {
		return "", ErrInvalidText
	}
	return string(pt), nil
}
