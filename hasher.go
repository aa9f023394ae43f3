package shake128

import (
	"hash"
	"io"

	"github.com/codahale/shake128/internal/sponge"
)

// Hasher is an incremental SHAKE128 instance that implements hash.Hash and io.Reader.
//
// Writes absorb input; the first Read finalizes absorption and each subsequent Read continues the output stream.
// Writing after reading panics.
type Hasher struct {
	s *sponge.Sponge
}

// New returns a new Hasher.
func New() *Hasher {
	s, err := sponge.New(params, sponge.KeccakF)
	if err != nil {
		panic(err)
	}
	return &Hasher{s: s}
}

// Write absorbs message bytes. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.s.Write(p)
}

// ReadFrom absorbs all of r, returning the number of bytes read and the first error other than io.EOF.
func (h *Hasher) ReadFrom(r io.Reader) (int64, error) {
	return h.s.ReadFrom(r)
}

// Read squeezes output from the XOF. It never returns an error.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.s.Read(p)
}

// Sum appends the first Size bytes of output to b without changing the underlying state. It must be called before
// Read; afterward it returns the next Size bytes of the stream instead.
func (h *Hasher) Sum(b []byte) []byte {
	return h.s.Clone().Squeeze(b, Size)
}

// Clone returns an independent copy of the Hasher.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{s: h.s.Clone()}
}

// Reset resets the Hasher to its initial state.
func (h *Hasher) Reset() {
	h.s.Reset()
}

// Size returns the default output size in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the SHAKE128 rate.
func (h *Hasher) BlockSize() int { return Rate }

var (
	_ hash.Hash     = (*Hasher)(nil)
	_ io.Reader     = (*Hasher)(nil)
	_ io.ReaderFrom = (*Hasher)(nil)
)
