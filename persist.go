package treesum

import (
	"context"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/quarive/treesum/internal/hashfile"
)

// WriteHashfile fingerprints dir and persists the per-file records as a
// hashfile document. By default the document is written to HashfileName
// in the current working directory, never inside the hashed tree.
//
// An exclusive advisory lock on a .lock sibling guards the write, so a
// concurrent Validate against the same document sees either the old or
// the new content, not a torn write.
func WriteHashfile(ctx context.Context, dir string, opts ...Option) error {
	cfg := newConfig(opts)

	snapshot, err := Fingerprint(ctx, dir, opts...)
	if err != nil {
		return err
	}

	data, err := hashfile.Encode(snapshot.Records)
	if err != nil {
		return err
	}

	path := cfg.documentPath()
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock hashfile: %w", err)
	}
	defer lock.Unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	cfg.log().DebugContext(ctx, "wrote hashfile",
		"path", path,
		"files", len(snapshot.Records),
		"bytes", len(data))
	return nil
}

// Validate reads the persisted hashfile document and checks dir against
// it. See ValidateData for the outcome semantics.
func Validate(ctx context.Context, dir string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)

	path := cfg.documentPath()
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock hashfile: %w", err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ValidateData(ctx, dir, data, opts...)
}
