// Package hashfile encodes and parses the persisted fingerprint
// document.
//
// The layout is one line per file: the lowercase hex digest, a single
// space, the relative path, and a line feed. There is no header and no
// version marker beyond the fixed filename convention. The layout has
// no escaping, so paths containing the delimiter or a newline are
// rejected at encode time rather than written ambiguously.
package hashfile

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/quarive/treesum/internal/sumtype"
)

// Name is the fixed filename the document is persisted under.
const Name = ".b3hash_v1"

const (
	delim   = " "
	newline = "\n"
)

// Entry is one parsed document line.
type Entry struct {
	Path   string
	Digest sumtype.Digest
}

// Encode serializes path-sorted records into the canonical document
// layout. Records must already be sorted; Encode writes them in the
// order given.
func Encode(records []sumtype.Record) ([]byte, error) {
	size := 0
	for i := range records {
		size += hex.EncodedLen(sumtype.DigestSize) + len(delim) + len(records[i].Path) + len(newline)
	}

	buf := make([]byte, 0, size)
	for i := range records {
		path := records[i].Path
		if path == "" || strings.ContainsAny(path, delim+newline) {
			return nil, fmt.Errorf("%w: %q", sumtype.ErrPathUnencodable, path)
		}
		buf = records[i].Digest.AppendHex(buf)
		buf = append(buf, delim...)
		buf = append(buf, path...)
		buf = append(buf, newline...)
	}
	return buf, nil
}

// Parse decodes a persisted document into entries, preserving document
// order. Any line without the delimiter, or with an undecodable
// digest, fails the whole parse with ErrMalformedHashfile.
func Parse(data []byte) ([]Entry, error) {
	doc := strings.TrimSuffix(string(data), newline)
	if doc == "" {
		return nil, nil
	}

	lines := strings.Split(doc, newline)
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		hexDigest, path, ok := strings.Cut(line, delim)
		if !ok {
			return nil, fmt.Errorf("%w: no delimiter in line %q", sumtype.ErrMalformedHashfile, line)
		}
		d, err := sumtype.ParseDigest(hexDigest)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: path, Digest: d})
	}
	return entries, nil
}
