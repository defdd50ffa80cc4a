package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarive/treesum"
)

func newWriteCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "write <directory>",
		Short: "Fingerprint a directory and persist the hashfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := treesum.WriteHashfile(cmd.Context(), args[0], cc.options()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hashfile written to %s in %s\n",
				cc.hashfilePath(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
