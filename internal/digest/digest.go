// Package digest computes BLAKE3-256 digests of files and of record
// sequences.
//
// File content is fed through one of two byte-source backends selected
// by size: a read-only memory mapping for large files, or a small heap
// buffer for files too small to benefit from mapping. Both backends
// produce identical digests.
package digest

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/quarive/treesum/internal/sizing"
	"github.com/quarive/treesum/internal/sumtype"
)

// mmapThreshold is the smallest file size hashed through a mapping.
// Matches the upstream BLAKE3 heuristic; below this a plain read beats
// the mapping setup cost.
const mmapThreshold = 16 << 10

// copyBufSize is the buffer size for the streaming backend.
const copyBufSize = 32 * 1024

// File hashes the content of the file at path and returns its digest
// together with the number of bytes hashed.
func File(path string) (sumtype.Digest, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return sumtype.Digest{}, 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return sumtype.Digest{}, 0, err
	}
	if !info.Mode().IsRegular() {
		return sumtype.Digest{}, 0, fmt.Errorf("not a regular file: %s", path)
	}

	if mmapSupported && info.Size() >= mmapThreshold {
		return hashMapped(f, info.Size())
	}
	return hashStreamed(f)
}

// hashStreamed hashes through a reused heap buffer. Used for small
// files and as the portable fallback when mapping is unavailable.
func hashStreamed(f *os.File) (sumtype.Digest, uint64, error) {
	h := blake3.New()
	buf := make([]byte, copyBufSize)
	n, err := io.CopyBuffer(h, f, buf)
	if err != nil {
		return sumtype.Digest{}, 0, err
	}
	var d sumtype.Digest
	h.Sum(d[:0])
	count, err := sizing.ToUint64(n, sumtype.ErrSizeOverflow)
	if err != nil {
		return sumtype.Digest{}, 0, err
	}
	return d, count, nil
}

// Aggregate folds path-sorted records into one directory-level digest
// and the checked sum of their sizes.
//
// Each record contributes its raw digest bytes followed by its path
// bytes. The digest width is fixed, so no field separator is needed for
// the encoding to be unambiguous. The result is a pure function of the
// sorted (digest, path) sequence.
func Aggregate(records []sumtype.Record) (sumtype.Digest, uint64, error) {
	h := blake3.New()
	var total uint64
	for i := range records {
		h.Write(records[i].Digest[:])
		h.Write([]byte(records[i].Path))

		sum, ok := sizing.AddUint64(total, records[i].Size)
		if !ok {
			return sumtype.Digest{}, 0, sumtype.ErrSizeOverflow
		}
		total = sum
	}
	var d sumtype.Digest
	h.Sum(d[:0])
	return d, total, nil
}
