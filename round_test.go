package aes256

import (
	"math/rand/v2"
	"testing"
)

// TestGMul checks products from FIPS 197 section 4.2
func TestGMul(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x00, 0xff, 0x00},
		{0x01, 0xa5, 0xa5},
	}
	for _, tt := range tests {
		if got := gmul(tt.a, tt.b); got != tt.want {
			t.Errorf("gmul(%#02x, %#02x) = %#02x, want = %#02x", tt.a, tt.b, got, tt.want)
		}
		if got := gmul(tt.b, tt.a); got != tt.want {
			t.Errorf("gmul(%#02x, %#02x) = %#02x, want = %#02x", tt.b, tt.a, got, tt.want)
		}
	}
}

// TestSboxInverse checks that the two substitution tables undo each other
func TestSboxInverse(t *testing.T) {
	for x := range 256 {
		b := byte(x)
		if got := invSubByte(subByte(b)); got != b {
			t.Errorf("invSbox[sbox[%#02x]] = %#02x", b, got)
		}
		if got := subByte(invSubByte(b)); got != b {
			t.Errorf("sbox[invSbox[%#02x]] = %#02x", b, got)
		}
	}
	if subByte(0x00) != 0x63 || subByte(0x53) != 0xed {
		t.Errorf("unexpected S-box values: sbox[0x00] = %#02x, sbox[0x53] = %#02x", subByte(0x00), subByte(0x53))
	}
}

// TestMixMatricesInverse checks invMixMatrix·mixMatrix = I over GF(2^8)
func TestMixMatricesInverse(t *testing.T) {
	for r := range 4 {
		for c := range 4 {
			var v byte
			for k := range 4 {
				v ^= gmul(invMixMatrix[r][k], mixMatrix[k][c])
			}
			want := byte(0)
			if r == c {
				want = 1
			}
			if v != want {
				t.Errorf("(inv·mix)[%d][%d] = %#02x, want = %#02x", r, c, v, want)
			}
		}
	}
}

// TestMixColumn checks a known column and the inverse law on random columns
func TestMixColumn(t *testing.T) {
	in := [4]byte{0xdb, 0x13, 0x53, 0x45}
	want := [4]byte{0x8e, 0x4d, 0xa1, 0xbc}
	if got := mixColumn(in); got != want {
		t.Errorf("mixColumn(%x) = %x, want = %x", in, got, want)
	}
	if got := invMixColumn(want); got != in {
		t.Errorf("invMixColumn(%x) = %x, want = %x", want, got, in)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		v := rng.Uint32()
		col := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
		if got := invMixColumn(mixColumn(col)); got != col {
			t.Fatalf("invMixColumn(mixColumn(%x)) = %x", col, got)
		}
	}
}

// TestStateLayout checks that blocks load and unload column by column
func TestStateLayout(t *testing.T) {
	var block [BlockLen]byte
	for i := range block {
		block[i] = byte(i)
	}

	s := bytesToState(block[:])
	expected := state{
		{0, 4, 8, 12},
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
	}
	if s != expected {
		t.Fatalf("bytesToState mismatch\nExpected: %v\nGot:      %v", expected, s)
	}

	var out [BlockLen]byte
	s.putBytes(out[:])
	if out != block {
		t.Errorf("putBytes mismatch\nExpected: %v\nGot:      %v", block, out)
	}
}

// TestShiftRows checks the rotation of each row and its inverse
func TestShiftRows(t *testing.T) {
	s := state{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	orig := s

	s.shiftRows()
	expected := state{
		{0, 1, 2, 3},
		{5, 6, 7, 4},
		{10, 11, 8, 9},
		{15, 12, 13, 14},
	}
	if s != expected {
		t.Fatalf("shiftRows mismatch\nExpected: %v\nGot:      %v", expected, s)
	}

	s.invShiftRows()
	if s != orig {
		t.Errorf("invShiftRows mismatch\nExpected: %v\nGot:      %v", orig, s)
	}
}

// TestRoundInverses checks each transform against its inverse on a random state
func TestRoundInverses(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var s state
	var k roundKey
	for r := range 4 {
		for c := range 4 {
			s[r][c] = byte(rng.Uint32())
			k[r][c] = byte(rng.Uint32())
		}
	}
	orig := s

	s.addRoundKey(&k)
	s.addRoundKey(&k)
	if s != orig {
		t.Errorf("addRoundKey is not self-inverse")
	}

	s.subBytes()
	s.invSubBytes()
	if s != orig {
		t.Errorf("invSubBytes does not undo subBytes")
	}

	s.mixColumns()
	s.invMixColumns()
	if s != orig {
		t.Errorf("invMixColumns does not undo mixColumns")
	}
}
