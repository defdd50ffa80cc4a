// Package sumtype defines the core fingerprint types and sentinel errors
// shared across the treesum packages.
package sumtype

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// DigestSize is the width in bytes of every digest in the system.
const DigestSize = 32

// Sentinel errors.
var (
	// ErrMalformedHashfile is returned when a persisted hashfile cannot be parsed.
	ErrMalformedHashfile = errors.New("treesum: malformed hashfile")

	// ErrPathUnencodable is returned when a relative path cannot be
	// represented in the hashfile layout.
	ErrPathUnencodable = errors.New("treesum: path not encodable")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("treesum: size overflow")
)

// Digest is a fixed-width BLAKE3-256 fingerprint.
type Digest [DigestSize]byte

// ParseDigest decodes the lowercase hex form produced by String.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(DigestSize) {
		return Digest{}, fmt.Errorf("%w: digest length %d", ErrMalformedHashfile, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %s", ErrMalformedHashfile, err)
	}
	return d, nil
}

// String returns the lowercase hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// AppendHex appends the lowercase hex form to dst and returns the
// extended buffer.
func (d Digest) AppendHex(dst []byte) []byte {
	return append(dst, hex.EncodeToString(d[:])...)
}

// Equal reports whether two digests match. The comparison is constant
// time with respect to the digest contents.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

// Record is the fingerprint of a single file.
type Record struct {
	// Path is the file path relative to the hashed root, slash-separated
	// on every platform.
	Path string

	// Digest is the BLAKE3-256 digest of the file content.
	Digest Digest

	// Size is the number of content bytes hashed.
	Size uint64
}
