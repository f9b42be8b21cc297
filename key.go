package aes256

const (
	nk    = KeyLen / 4       // words in the cipher key
	words = 4 * (Rounds + 1) // words in the expanded key
)

// roundKey is 16 bytes of expanded key material in the same [row][col] layout
// as state.
type roundKey [4][4]byte

// roundKeys holds the full AES-256 schedule, one key per round plus the
// initial whitening key.
type roundKeys [Rounds + 1]roundKey

// expandKey runs the Rijndael key expansion for a 256-bit key.
func expandKey(key []byte) *roundKeys {
	if len(key) != KeyLen {
		panic("expandKey: key must be exactly 32 bytes")
	}

	var w [words][4]byte
	for i := range nk {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < words; i++ {
		temp := w[i-1]
		switch i % nk {
		case 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon(i / nk)
		case 4:
			// 256-bit keys only.
			temp = subWord(temp)
		}
		for j := range 4 {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	rks := new(roundKeys)
	for n := range rks {
		for c := range 4 {
			for r := range 4 {
				rks[n][r][c] = w[4*n+c][r]
			}
		}
	}
	return rks
}

// rotWord rotates a word left by one byte.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// rcon returns the n-th round constant (n >= 1): x^(n-1) in GF(2^8). Only the
// high byte of the constant word is non-zero.
func rcon(n int) byte {
	rc := byte(0x01)
	for range n - 1 {
		rc = xtime(rc)
	}
	return rc
}
