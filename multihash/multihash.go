// Package multihash binds SHAKE128 to the multiformats multihash encoding.
//
// Importing this package registers this module's SHAKE128 as the hash.Hash factory for the SHAKE-128 multihash code,
// replacing the default registration.
package multihash

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/codahale/shake128"
	mh "github.com/multiformats/go-multihash"
	mhcore "github.com/multiformats/go-multihash/core"
)

// Code is the multihash code for SHAKE-128.
const Code = mh.SHAKE_128

// ErrWrongCode is returned when verifying a multihash which isn't SHAKE-128.
var ErrWrongCode = errors.New("shake128: multihash is not shake-128")

func init() { //nolint:gochecknoinits // registry is global
	mhcore.Register(Code, func() hash.Hash { return shake128.New() })
}

// Sum returns a SHAKE-128 multihash of data with a digest of length bytes. A negative length selects shake128.Size.
func Sum(data []byte, length int) (mh.Multihash, error) {
	if length < 0 {
		length = shake128.Size
	}
	return Encode(shake128.Sum(data, length))
}

// SumStream reads r until io.EOF and returns a SHAKE-128 multihash of its contents with a digest of length bytes. A
// negative length selects shake128.Size.
func SumStream(r io.Reader, length int) (mh.Multihash, error) {
	if length < 0 {
		length = shake128.Size
	}

	d, err := shake128.Digest(r, length)
	if err != nil {
		return nil, err
	}
	return Encode(d)
}

// Verify reports whether m is the SHAKE-128 multihash of data, using the digest length m declares.
func Verify(m mh.Multihash, data []byte) (bool, error) {
	dec, err := mh.Decode(m)
	if err != nil {
		return false, err
	}
	if dec.Code != Code {
		return false, fmt.Errorf("%w: got %s", ErrWrongCode, dec.Name)
	}

	want := shake128.Sum(data, dec.Length)
	return subtle.ConstantTimeCompare(dec.Digest, want) == 1, nil
}

// Encode wraps a SHAKE128 digest of any length as a SHAKE-128 multihash.
func Encode(digest []byte) (mh.Multihash, error) {
	b, err := mh.Encode(digest, Code)
	if err != nil {
		return nil, err
	}
	return mh.Multihash(b), nil
}
