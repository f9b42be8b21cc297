package aes256

// gmul multiplies two elements of GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for range 8 {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// xtime doubles x in GF(2^8).
func xtime(x byte) byte {
	return gmul(x, 0x02)
}
