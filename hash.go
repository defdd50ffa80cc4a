package treesum

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/quarive/treesum/internal/digest"
)

// hashRecords hashes every path in relPaths concurrently and returns
// one record per file, sorted by byte-lexicographic path order.
//
// The input is sorted before dispatch and each worker writes only its
// own slot, so the output order is deterministic even though workers
// complete in arbitrary order. Any unreadable file fails the whole
// batch; there is no partial result.
func hashRecords(ctx context.Context, root string, relPaths []string, cfg *config) ([]Record, error) {
	slices.Sort(relPaths)

	records := make([]Record, len(relPaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workerLimit())
	for i, rel := range relPaths {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, size, err := digest.File(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("hash %s: %w", rel, err)
			}
			records[i] = Record{Path: rel, Digest: d, Size: size}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
