package treesum

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/quarive/treesum/internal/digest"
	"github.com/quarive/treesum/internal/hashfile"
)

// ValidateData checks dir against the raw bytes of a previously
// persisted hashfile document.
//
// Every listed file is re-hashed with the same procedure used to
// produce the document, and digests are compared in constant time. The
// returned slice names the relative paths that failed — files that are
// missing or whose content changed, folded into one category — in
// document order. A nil result means every file verified. Files present
// on disk but absent from the document are never reported.
//
// A malformed document line fails the whole validation with
// ErrMalformedHashfile, and any I/O error other than nonexistence
// aborts it. Validation failures themselves are a normal outcome, not
// an error.
func ValidateData(ctx context.Context, dir string, data []byte, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)

	entries, err := hashfile.Parse(data)
	if err != nil {
		return nil, err
	}

	failed := make([]bool, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workerLimit())
	for i := range entries {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := &entries[i]
			abs := filepath.Join(dir, filepath.FromSlash(entry.Path))

			if _, err := os.Stat(abs); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					failed[i] = true
					return nil
				}
				return err
			}

			d, _, err := digest.File(abs)
			if err != nil {
				return fmt.Errorf("rehash %s: %w", entry.Path, err)
			}
			if !d.Equal(entry.Digest) {
				failed[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var paths []string
	for i, bad := range failed {
		if bad {
			paths = append(paths, entries[i].Path)
		}
	}
	if len(paths) > 0 {
		cfg.log().DebugContext(ctx, "validation failures",
			"dir", dir,
			"failed", len(paths))
	}
	return paths, nil
}
