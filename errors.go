package treesum

import "github.com/quarive/treesum/internal/sumtype"

// Errors re-exported from internal/sumtype.
var (
	// ErrMalformedHashfile is returned when a persisted hashfile line has
	// no delimiter or an undecodable digest.
	ErrMalformedHashfile = sumtype.ErrMalformedHashfile

	// ErrPathUnencodable is returned when a record path contains the
	// hashfile delimiter or a newline and therefore cannot be serialized
	// unambiguously.
	ErrPathUnencodable = sumtype.ErrPathUnencodable

	// ErrSizeOverflow is returned when total size accumulation overflows.
	ErrSizeOverflow = sumtype.ErrSizeOverflow
)
