package treesum

import (
	"github.com/quarive/treesum/internal/hashfile"
	"github.com/quarive/treesum/internal/sumtype"
)

// HashfileName is the fixed filename fingerprints are persisted under.
// The leading dot keeps the document itself out of any fingerprint
// should it ever be written inside the hashed tree.
const HashfileName = hashfile.Name

// DigestSize is the width in bytes of every digest in the system.
const DigestSize = sumtype.DigestSize

// Core types, defined in internal/sumtype so the internal packages can
// share them without importing this package.
type (
	// Digest is a fixed-width BLAKE3-256 fingerprint.
	Digest = sumtype.Digest

	// Record is the fingerprint of a single file: its root-relative
	// slash-separated path, content digest, and size in bytes.
	Record = sumtype.Record
)

// ParseDigest decodes the lowercase hex form of a Digest.
func ParseDigest(s string) (Digest, error) {
	return sumtype.ParseDigest(s)
}

// Snapshot is the result of one fingerprinting pass over a directory.
// It is never mutated after construction.
type Snapshot struct {
	// Name is the basename of the fingerprinted root directory.
	Name string

	// Records holds one entry per visible regular file, sorted by
	// byte-lexicographic path order.
	Records []Record

	// Digest is the aggregate digest over the sorted records.
	Digest Digest

	// Size is the total number of content bytes hashed.
	Size uint64
}
