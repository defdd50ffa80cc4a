package treesum

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.txt":       "hello",
		"b/sub.txt":   "world",
		"b/c/far.txt": "deep",
		"zz.bin":      "tail",
	})

	first, err := Fingerprint(context.Background(), root)
	require.NoError(t, err)
	second, err := Fingerprint(context.Background(), root, WithWorkers(1))
	require.NoError(t, err)

	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.Size, second.Size)
}

func TestFingerprint_RecordsSortedByPath(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"zz.txt":    "1",
		"a.txt":     "2",
		"b/sub.txt": "3",
		"b.txt":     "4",
	})

	snapshot, err := Fingerprint(context.Background(), root)
	require.NoError(t, err)

	paths := make([]string, len(snapshot.Records))
	for i, rec := range snapshot.Records {
		paths[i] = rec.Path
	}
	assert.True(t, slices.IsSorted(paths), "records not in byte-lexicographic path order: %v", paths)
	assert.Equal(t, []string{"a.txt", "b.txt", "b/sub.txt", "zz.txt"}, paths)
}

func TestFingerprint_HiddenExcluded(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.txt":                   "hello",
		".secret":                 "x",
		"visible/file.txt":        "keep",
		"visible/.hidden/sub.txt": "drop",
	})

	snapshot, err := Fingerprint(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, "a.txt", snapshot.Records[0].Path)
	assert.Equal(t, "visible/file.txt", snapshot.Records[1].Path)
}

func TestFingerprint_TotalSize(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a": strings.Repeat("x", 10),
		"b": strings.Repeat("x", 20),
		"c": strings.Repeat("x", 30),
	})

	snapshot, err := Fingerprint(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), snapshot.Size)
}

func TestFingerprint_AggregateTracksContentAndPaths(t *testing.T) {
	t.Parallel()

	base, err := Fingerprint(context.Background(), writeTree(t, map[string]string{"a.txt": "hello"}))
	require.NoError(t, err)

	changed, err := Fingerprint(context.Background(), writeTree(t, map[string]string{"a.txt": "hellx"}))
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest, changed.Digest)

	renamed, err := Fingerprint(context.Background(), writeTree(t, map[string]string{"b.txt": "hello"}))
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest, renamed.Digest)

	identical, err := Fingerprint(context.Background(), writeTree(t, map[string]string{"a.txt": "hello"}))
	require.NoError(t, err)
	assert.Equal(t, base.Digest, identical.Digest)
}

func TestFingerprint_NameIsRootBasename(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "x"})
	snapshot, err := Fingerprint(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root), snapshot.Name)
}

func TestFingerprint_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Fingerprint(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestFingerprint_CanceledContext(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "hello"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fingerprint(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFingerprint_EmptyDirectory(t *testing.T) {
	t.Parallel()

	snapshot, err := Fingerprint(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Records)
	assert.Equal(t, uint64(0), snapshot.Size)
}
