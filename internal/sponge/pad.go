package sponge

import "fmt"

// A Suffix is a short bit string appended to the message before pad10*1 padding to separate functions which share a
// permutation. Bits holds the suffix in the order FIPS 202 appends it, least-significant bit first; Len is its length
// in bits.
type Suffix struct {
	Bits byte
	Len  uint
}

// SHAKE is the suffix for the SHAKE family of XOFs, 1111.
var SHAKE = Suffix{Bits: 0b1111, Len: 4} //nolint:gochecknoglobals // constant

// maxSuffixLen is the longest suffix which still leaves room for the first padding bit in the same byte.
const maxSuffixLen = 7 - 1

// Byte returns the suffix followed by the first bit of pad10*1, e.g. 0x1F for SHAKE.
func (s Suffix) Byte() byte {
	return s.Bits&(1<<s.Len-1) | 1<<s.Len
}

// Pad fills block, which holds n message bytes, with the domain suffix and pad10*1 padding. Bytes from n onward are
// overwritten. If n is the last byte of the block, the suffix and both padding bits share it. Pad panics if n is not a
// valid offset into block.
func Pad(block []byte, n int, s Suffix) {
	if n < 0 || n >= len(block) {
		panic(fmt.Sprintf("shake128: invalid padding offset %d for %d-byte block", n, len(block)))
	}

	clear(block[n:])
	block[n] = s.Byte()
	block[len(block)-1] |= 0x80
}
