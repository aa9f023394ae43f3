package keccak

import (
	"encoding/binary"
	"errors"
)

const (
	// Lanes is the number of 64-bit lanes in a Keccak-p[1600] state.
	Lanes = 25

	// Width is the width of a Keccak-p[1600] state in bytes.
	Width = Lanes * 8
)

// ErrInvalidLength is returned when a byte sequence can't be split evenly into lanes.
var ErrInvalidLength = errors.New("shake128: length is not a multiple of the lane size")

// A State is the 5x5 array of lanes the permutation operates on. Lane (x, y) is stored at index 5*y+x.
type State [Lanes]uint64

// index returns the position of lane (x, y). Both coordinates are reduced mod 5, so callers must only pass
// non-negative values; write x-1 as x+4.
func index(x, y int) int {
	return 5*(y%5) + x%5
}

// Lane returns the lane at (x, y), with both coordinates taken mod 5.
func (s *State) Lane(x, y int) uint64 {
	return s[index(x, y)]
}

// XORLanes XORs the given lanes into the leading lanes of the state. It panics if more than Lanes lanes are given.
func (s *State) XORLanes(lanes []uint64) {
	for i, l := range lanes {
		s[i] ^= l
	}
}

// AppendBytes appends the little-endian encoding of the first n bytes of the state to b. n must be a multiple of 8
// and no larger than Width.
func (s *State) AppendBytes(b []byte, n int) ([]byte, error) {
	if n%8 != 0 || n < 0 || n > Width {
		return b, ErrInvalidLength
	}
	return AppendBytes(b, s[:n/8]), nil
}

// AppendLanes decodes src into lanes, eight little-endian bytes per lane, and appends them to dst. It returns
// ErrInvalidLength if len(src) is not a multiple of 8.
func AppendLanes(dst []uint64, src []byte) ([]uint64, error) {
	if len(src)%8 != 0 {
		return dst, ErrInvalidLength
	}
	for len(src) > 0 {
		dst = append(dst, binary.LittleEndian.Uint64(src))
		src = src[8:]
	}
	return dst, nil
}

// AppendBytes encodes each lane of src as eight little-endian bytes and appends them to dst.
func AppendBytes(dst []byte, src []uint64) []byte {
	for _, l := range src {
		dst = binary.LittleEndian.AppendUint64(dst, l)
	}
	return dst
}

