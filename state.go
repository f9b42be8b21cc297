package aes256

// state is one block laid out as a 4x4 matrix indexed [row][col].
type state [4][4]byte

// bytesToState loads a 16-byte block column by column: byte k lands in row k%4,
// column k/4.
func bytesToState(block []byte) state {
	if len(block) != BlockLen {
		panic("bytesToState: block must be exactly 16 bytes")
	}
	var s state
	for c := range 4 {
		for r := range 4 {
			s[r][c] = block[c*4+r]
		}
	}
	return s
}

// putBytes writes the state back out in the same column-major order.
func (s *state) putBytes(dst []byte) {
	if len(dst) < BlockLen {
		panic("putBytes: output must be at least 16 bytes")
	}
	for c := range 4 {
		for r := range 4 {
			dst[c*4+r] = s[r][c]
		}
	}
}

// column returns column c read top to bottom.
func (s *state) column(c int) [4]byte {
	return [4]byte{s[0][c], s[1][c], s[2][c], s[3][c]}
}

// setColumn replaces column c.
func (s *state) setColumn(c int, col [4]byte) {
	for r := range 4 {
		s[r][c] = col[r]
	}
}
