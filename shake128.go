// Package shake128 implements the SHAKE128 extendable-output function (XOF) as specified in FIPS 202.
//
// SHAKE128 is a sponge over the Keccak-f[1600] permutation with a rate of 168 bytes, a capacity of 32 bytes, and the
// domain suffix 1111. Its output may be any length; shorter outputs are prefixes of longer ones.
package shake128

import (
	"errors"
	"io"

	"github.com/codahale/shake128/internal/sponge"
)

const (
	// Rate is the number of bytes absorbed or squeezed per permutation.
	Rate = 168

	// Capacity is the number of state bytes hidden from input and output.
	Capacity = 32

	// Size is the output size, in bytes, of Sum on a Hasher. It gives 128-bit collision resistance.
	Size = 32
)

// ErrInvalidLength is returned when a negative output length is requested.
var ErrInvalidLength = errors.New("shake128: invalid output length")

//nolint:gochecknoglobals // fixed parameters
var params = sponge.Params{Rate: Rate, Suffix: sponge.SHAKE}

// Digest reads r until io.EOF and returns n bytes of SHAKE128 output. Only one block of input is held in memory at a
// time. Errors from r are returned unchanged. A length of zero returns an empty slice.
func Digest(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	h := New()
	if _, err := h.ReadFrom(r); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	_, _ = h.Read(out)
	return out, nil
}

// Sum returns n bytes of SHAKE128 output for msg. It panics if n is negative.
func Sum(msg []byte, n int) []byte {
	h := New()
	_, _ = h.Write(msg)
	return h.s.Squeeze(make([]byte, 0, n), n)
}
