// Package sponge implements the FIPS 202 sponge construction over a 1600-bit permutation.
//
// A Sponge absorbs input one rate-sized block at a time, so its memory use is independent of the message length. On
// the first read it pads the final, possibly empty, block with the domain suffix and pad10*1 and switches to
// squeezing.
package sponge

import (
	"errors"
	"fmt"
	"io"

	"github.com/codahale/shake128/internal/keccak"
	"github.com/codahale/shake128/internal/mem"
)

// ErrInvalidParams is returned when a sponge is configured with an unusable rate or suffix.
var ErrInvalidParams = errors.New("shake128: invalid sponge parameters")

// A Permutation transforms a 1600-bit state in place.
type Permutation interface {
	Permute(s *keccak.State)
}

// PermutationFunc adapts an ordinary function to the Permutation interface.
type PermutationFunc func(s *keccak.State)

// Permute calls f(s).
func (f PermutationFunc) Permute(s *keccak.State) {
	f(s)
}

// KeccakF is the Keccak-f[1600] permutation.
var KeccakF Permutation = PermutationFunc(keccak.F1600) //nolint:gochecknoglobals // stateless

// Params describes a sponge instance.
type Params struct {
	// Rate is the number of bytes absorbed or squeezed per permutation call. The capacity is the rest of the state.
	Rate int

	// Suffix is appended to the message before padding.
	Suffix Suffix
}

// Capacity returns the number of state bytes which are never directly read or written.
func (p Params) Capacity() int {
	return keccak.Width - p.Rate
}

// Validate checks that the rate is a whole number of lanes, leaves a non-empty capacity, and that the suffix fits in a
// single byte alongside the first padding bit.
func (p Params) Validate() error {
	if p.Rate <= 0 || p.Rate >= keccak.Width || p.Rate%8 != 0 {
		return fmt.Errorf("%w: rate of %d bytes", ErrInvalidParams, p.Rate)
	}
	if p.Suffix.Len > maxSuffixLen {
		return fmt.Errorf("%w: %d-bit suffix", ErrInvalidParams, p.Suffix.Len)
	}
	return nil
}

// A Sponge is an incremental sponge function. It implements io.Writer, io.ReaderFrom, and io.Reader.
type Sponge struct {
	params    Params
	perm      Permutation
	state     keccak.State
	lanes     [keccak.Lanes]uint64 // scratch for decoding a block
	buf       [keccak.Width]byte   // pending input while absorbing, current output block while squeezing
	n         int                  // bytes buffered while absorbing, bytes consumed while squeezing
	squeezing bool
}

// New returns a Sponge with an all-zero state.
func New(p Params, perm Permutation) (*Sponge, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Sponge{params: p, perm: perm}, nil
}

// Write absorbs message bytes. It never returns an error. It panics if called after Read or Squeeze.
func (s *Sponge) Write(p []byte) (int, error) {
	s.checkAbsorbing()

	n := len(p)
	rate := s.params.Rate

	// Absorb full blocks directly from p if nothing is buffered.
	for s.n == 0 && len(p) >= rate {
		s.absorbBlock(p[:rate])
		p = p[rate:]
	}

	for len(p) > 0 {
		c := copy(s.buf[s.n:rate], p)
		s.n += c
		p = p[c:]
		if s.n == rate {
			s.absorbBlock(s.buf[:rate])
			s.n = 0
		}
	}

	return n, nil
}

// ReadFrom absorbs everything r produces until io.EOF, reading at most one block at a time. Any other error from r,
// io.ErrUnexpectedEOF included, is returned unchanged and leaves the sponge holding whatever was read before it. It
// panics if called after Read or Squeeze.
func (s *Sponge) ReadFrom(r io.Reader) (int64, error) {
	s.checkAbsorbing()

	var total int64
	rate := s.params.Rate
	for {
		n, err := r.Read(s.buf[s.n:rate])
		s.n += n
		total += int64(n)

		// A full block says nothing about whether the stream is done, so it's absorbed and the loop goes back for more.
		if s.n == rate {
			s.absorbBlock(s.buf[:rate])
			s.n = 0
		}

		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, err
		}
	}
}

// Read squeezes output into p. The first call pads and absorbs the final block. It never returns an error.
func (s *Sponge) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.finalize()
	}

	n := len(p)
	rate := s.params.Rate
	for len(p) > 0 {
		if s.n == rate {
			s.perm.Permute(&s.state)
			s.extract()
		}
		c := copy(p, s.buf[s.n:rate])
		s.n += c
		p = p[c:]
	}

	return n, nil
}

// Squeeze appends n bytes of output to dst and returns the resulting slice.
func (s *Sponge) Squeeze(dst []byte, n int) []byte {
	ret, out := mem.SliceForAppend(dst, n)
	_, _ = s.Read(out)
	return ret
}

// Clone returns an independent copy of the sponge.
func (s *Sponge) Clone() *Sponge {
	c := *s
	return &c
}

// Reset returns the sponge to its initial, empty state.
func (s *Sponge) Reset() {
	clear(s.state[:])
	clear(s.buf[:])
	s.n = 0
	s.squeezing = false
}

func (s *Sponge) checkAbsorbing() {
	if s.squeezing {
		panic("shake128: write after read")
	}
}

// absorbBlock XORs a rate-sized block into the leading lanes of the state and permutes it. The capacity lanes are
// never touched.
func (s *Sponge) absorbBlock(block []byte) {
	lanes, err := keccak.AppendLanes(s.lanes[:0], block)
	if err != nil {
		panic(err)
	}
	s.state.XORLanes(lanes)
	s.perm.Permute(&s.state)
}

// finalize pads the buffered bytes, which may be none, and absorbs the final block.
func (s *Sponge) finalize() {
	rate := s.params.Rate
	Pad(s.buf[:rate], s.n, s.params.Suffix)
	s.absorbBlock(s.buf[:rate])
	s.squeezing = true
	s.extract()
}

// extract copies the rate portion of the state into the output buffer.
func (s *Sponge) extract() {
	if _, err := s.state.AppendBytes(s.buf[:0], s.params.Rate); err != nil {
		panic(err)
	}
	s.n = 0
}

var (
	_ io.Writer     = (*Sponge)(nil)
	_ io.ReaderFrom = (*Sponge)(nil)
	_ io.Reader     = (*Sponge)(nil)
)
