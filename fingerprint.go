package treesum

import (
	"context"
	"path/filepath"
	"time"

	"github.com/quarive/treesum/internal/digest"
	"github.com/quarive/treesum/internal/walk"
)

// Fingerprint hashes every visible regular file beneath dir and folds
// the results into a directory-level snapshot.
//
// Hidden entries (names starting with a dot) are excluded at every
// depth; a visible file under a hidden directory is just as excluded as
// a hidden file. The snapshot's records are sorted by path, and the
// aggregate digest depends only on that sorted sequence, so identical
// directory content always fingerprints identically.
//
// Any error listing a directory or reading a file aborts the whole
// pass. The context is checked between files, so cancellation takes
// effect without waiting for the full tree.
func Fingerprint(ctx context.Context, dir string, opts ...Option) (*Snapshot, error) {
	cfg := newConfig(opts)
	start := time.Now()

	relPaths, err := walk.Files(dir)
	if err != nil {
		return nil, err
	}

	records, err := hashRecords(ctx, dir, relPaths, &cfg)
	if err != nil {
		return nil, err
	}

	aggregate, total, err := digest.Aggregate(records)
	if err != nil {
		return nil, err
	}

	cfg.log().DebugContext(ctx, "fingerprinted directory",
		"dir", dir,
		"files", len(records),
		"bytes", total,
		"elapsed", time.Since(start))

	return &Snapshot{
		Name:    filepath.Base(filepath.Clean(dir)),
		Records: records,
		Digest:  aggregate,
		Size:    total,
	}, nil
}
