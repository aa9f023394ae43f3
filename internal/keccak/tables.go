package keccak

import "math/bits"

const (
	// Rounds is the number of rounds in Keccak-f[1600]: 12 + 2*log2(64).
	Rounds = 12 + 2*log2W

	log2W  = 6   // log2 of the lane width in bits
	period = 255 // period of the rc LFSR
)

//nolint:gochecknoglobals // computed once, read-only
var (
	rotations      = rotationOffsets()
	rcTable        = rcSequence()
	roundConstants = roundConstantTable()
)

// rotationOffsets walks the 24 non-origin lanes starting at (1, 0) via (x, y) -> (y, 2x+3y) and assigns lane t the
// t-th triangular number mod 64. Lane (0, 0) is never visited and keeps an offset of 0.
func rotationOffsets() [Lanes]int {
	var r [Lanes]int
	x, y := 1, 0
	for t := range Lanes - 1 {
		r[index(x, y)] = ((t + 1) * (t + 2) / 2) % 64
		x, y = y, (2*x+3*y)%5
	}
	return r
}

// rcSequence returns one full period of the rc bit sequence, produced by an 8-bit LFSR with feedback polynomial
// x^8 + x^6 + x^5 + x^4 + 1.
func rcSequence() [period]bool {
	var t [period]bool
	r := uint16(0b00000001)
	for i := range period {
		t[i] = r&1 == 1
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0b01110001
		}
		r &= 0xFF
	}
	return t
}

// rc returns bit t of the round-constant sequence.
func rc(t int) bool {
	return rcTable[t%period]
}

// roundConstant returns the value XORed into lane (0, 0) in round ir. Bit 2^j - 1 is set for each j in [0, 6] where
// rc(j + 7*ir) is set.
func roundConstant(ir int) uint64 {
	var c uint64
	for j := range log2W + 1 {
		if rc(j + 7*ir) {
			c |= 1 << (1<<j - 1)
		}
	}
	return c
}

func roundConstantTable() [Rounds]uint64 {
	var t [Rounds]uint64
	for ir := range t {
		t[ir] = roundConstant(ir)
	}
	return t
}

// rotl rotates a lane left by n bits.
func rotl(l uint64, n int) uint64 {
	return bits.RotateLeft64(l, n)
}
