// Package walk enumerates the visible regular files beneath a directory
// root without recursing.
package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// hiddenPrefix marks an entry as hidden. A hidden directory hides its
// entire subtree, including visible descendants.
const hiddenPrefix = "."

// Files returns the relative, slash-separated paths of all visible
// regular files beneath root. Entries whose name starts with a dot are
// excluded at every depth, and non-regular entries (symlinks, devices,
// sockets) are ignored.
//
// Traversal uses an explicit worklist of pending directories instead of
// recursion, so arbitrarily deep trees cannot exhaust the call stack.
// The order of the returned paths is OS-dependent; callers must not
// rely on it.
//
// Any error listing a directory aborts the walk with no partial result.
func Files(root string) ([]string, error) {
	files := make([]string, 0, 1024)

	// Relative slash paths of directories still to list. The empty
	// string seeds the first pop with root itself.
	pending := []string{""}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, hiddenPrefix) {
				continue
			}
			rel := name
			if dir != "" {
				rel = dir + "/" + name
			}
			switch mode := entry.Type(); {
			case mode.IsRegular():
				files = append(files, rel)
			case mode.IsDir():
				pending = append(pending, rel)
			}
		}
	}

	return files, nil
}
