package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

// renderFailureTable formats the failed paths with a local probe of
// each failure. Styling is dropped when stdout is not a terminal so the
// output stays pipe-friendly.
func renderFailureTable(dir string, failed []string) string {
	tw := table.NewWriter()
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Path", "Status"})
	for _, rel := range failed {
		tw.AppendRow(table.Row{rel, failureStatus(dir, rel)})
	}
	return tw.Render()
}
