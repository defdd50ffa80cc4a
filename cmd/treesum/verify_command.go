package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarive/treesum"
)

func newVerifyCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <directory>",
		Short: "Re-hash a directory and report files failing the persisted hashfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			start := time.Now()
			failed, err := treesum.Validate(cmd.Context(), dir, cc.options()...)
			if err != nil {
				return err
			}
			elapsed := time.Since(start).Round(time.Millisecond)

			out := cmd.OutOrStdout()
			if len(failed) == 0 {
				fmt.Fprintf(out, "All files verified in %s\n", elapsed)
				return nil
			}

			fmt.Fprintln(out, renderFailureTable(dir, failed))
			return fmt.Errorf("%d file(s) failed verification", len(failed))
		},
	}
}

// failureStatus probes why a path failed, for display only. The library
// result deliberately folds missing and changed into one category.
func failureStatus(dir, rel string) string {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	case err != nil:
		return "unknown"
	default:
		return "changed"
	}
}
