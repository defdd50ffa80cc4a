package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quarive/treesum"
)

func newHashCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <directory>",
		Short: "Fingerprint a directory and print its checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			snapshot, err := treesum.Fingerprint(cmd.Context(), args[0], cc.options()...)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directory:  %s\n", snapshot.Name)
			fmt.Fprintf(out, "Checksum:   %s\n", snapshot.Digest)
			fmt.Fprintf(out, "Files:      %d\n", len(snapshot.Records))
			fmt.Fprintf(out, "Size:       %s (%d bytes)\n", humanize.IBytes(snapshot.Size), snapshot.Size)
			fmt.Fprintf(out, "Elapsed:    %s\n", elapsed.Round(time.Millisecond))
			fmt.Fprintf(out, "Throughput: %s\n", throughput(snapshot.Size, elapsed))
			return nil
		},
	}
}

func throughput(bytes uint64, elapsed time.Duration) string {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return "n/a"
	}
	return humanize.IBytes(uint64(float64(bytes)/seconds)) + "/s"
}
