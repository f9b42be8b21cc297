package aes256

import "crypto/cipher"

// encryptBlock encrypts one 16-byte block from src into dst.
func encryptBlock(rks *roundKeys, dst, src []byte) {
	s := bytesToState(src)

	s.addRoundKey(&rks[0])
	for n := 1; n < Rounds; n++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&rks[n])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&rks[Rounds])

	s.putBytes(dst)
}

// decryptBlock decrypts one 16-byte block from src into dst.
//
// InvMixColumns runs after the round key is added, so the schedule is used as
// produced by expandKey, in reverse order.
func decryptBlock(rks *roundKeys, dst, src []byte) {
	s := bytesToState(src)

	s.addRoundKey(&rks[Rounds])
	for n := Rounds - 1; n > 0; n-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(&rks[n])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(&rks[0])

	s.putBytes(dst)
}

// Cipher is an AES-256 block cipher with an expanded key schedule.
type Cipher struct {
	rks *roundKeys
}

// NewCipher expands key into a Cipher. The key must be exactly 32 bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeyLen {
		return nil, ErrInvalidKeyLength
	}
	return &Cipher{rks: expandKey(key)}, nil
}

// BlockSize returns the cipher's block size, 16.
func (c *Cipher) BlockSize() int {
	return BlockLen
}

// Encrypt encrypts the first block in src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockLen {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockLen {
		panic("aes256: output not full block")
	}
	encryptBlock(c.rks, dst[:BlockLen], src[:BlockLen])
}

// Decrypt decrypts the first block in src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockLen {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockLen {
		panic("aes256: output not full block")
	}
	decryptBlock(c.rks, dst[:BlockLen], src[:BlockLen])
}

var _ cipher.Block = (*Cipher)(nil)
