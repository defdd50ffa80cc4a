//go:build !unix

package digest

import (
	"errors"
	"os"

	"github.com/quarive/treesum/internal/sumtype"
)

const mmapSupported = false

func hashMapped(_ *os.File, _ int64) (sumtype.Digest, uint64, error) {
	return sumtype.Digest{}, 0, errors.ErrUnsupported
}
