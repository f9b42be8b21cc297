package aes256

// mixMatrix and invMixMatrix are inverse 4x4 matrices over GF(2^8).
var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0e, 0x0b, 0x0d, 0x09},
		{0x09, 0x0e, 0x0b, 0x0d},
		{0x0d, 0x09, 0x0e, 0x0b},
		{0x0b, 0x0d, 0x09, 0x0e},
	}
)

// addRoundKey XORs the round key into the state. Applying it twice with the same
// key is the identity.
func (s *state) addRoundKey(k *roundKey) {
	for r := range 4 {
		for c := range 4 {
			s[r][c] ^= k[r][c]
		}
	}
}

// subBytes applies the S-box to every byte.
func (s *state) subBytes() {
	for r := range 4 {
		for c := range 4 {
			s[r][c] = subByte(s[r][c])
		}
	}
}

// invSubBytes applies the inverse S-box to every byte.
func (s *state) invSubBytes() {
	for r := range 4 {
		for c := range 4 {
			s[r][c] = invSubByte(s[r][c])
		}
	}
}

// shiftRows rotates row i left by i positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := range 4 {
			s[r][c] = row[(c+r)%4]
		}
	}
}

// invShiftRows rotates row i right by i positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := range 4 {
			s[r][(c+r)%4] = row[c]
		}
	}
}

// mixColumns multiplies every column by mixMatrix.
func (s *state) mixColumns() {
	for c := range 4 {
		s.setColumn(c, mixColumn(s.column(c)))
	}
}

// invMixColumns multiplies every column by invMixMatrix.
func (s *state) invMixColumns() {
	for c := range 4 {
		s.setColumn(c, invMixColumn(s.column(c)))
	}
}

func mixColumn(col [4]byte) [4]byte {
	return mulColumn(&mixMatrix, col)
}

func invMixColumn(col [4]byte) [4]byte {
	return mulColumn(&invMixMatrix, col)
}

// mulColumn computes m·col over GF(2^8).
func mulColumn(m *[4][4]byte, col [4]byte) [4]byte {
	var out [4]byte
	for r := range 4 {
		out[r] = gmul(m[r][0], col[0]) ^ gmul(m[r][1], col[1]) ^ gmul(m[r][2], col[2]) ^ gmul(m[r][3], col[3])
	}
	return out
}
