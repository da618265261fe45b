// Package report renders duplicate groups and the end-of-run summary.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dupescout/dupescout/internal/grouping"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/util"
)

// PrintGroups writes each group as a blank-line-separated block with one
// path per line. In quiet mode only the paths and separators appear, which
// keeps the output parseable by line-oriented tools.
func PrintGroups(w io.Writer, groups []grouping.Group, quiet bool) {
	header := color.New(color.FgCyan, color.Bold).FprintfFunc()

	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if !quiet {
			header(w, "# group %d: %d files, %s reclaimable\n",
				i+1, len(group.Members), util.HumanReadableSize(group.ReclaimableSize()))
		}
		for _, member := range group.Members {
			fmt.Fprintln(w, member.Path)
		}
	}
}

// PrintSummary writes the per-kind skip accounting and group totals.
func PrintSummary(w io.Writer, groups []grouping.Group, stats *scanerr.Stats) {
	var reclaimable int64
	var duplicates int
	for _, group := range groups {
		reclaimable += group.ReclaimableSize()
		duplicates += len(group.Members) - 1
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New("Metric", "Value").WithWriter(w).WithHeaderFormatter(headerFmt)
	tbl.AddRow("Files scanned", stats.Scanned)
	tbl.AddRow("Files fingerprinted", stats.Fingerprints)
	tbl.AddRow("Duplicate groups", len(groups))
	tbl.AddRow("Redundant copies", duplicates)
	tbl.AddRow("Reclaimable space", util.HumanReadableSize(reclaimable))
	if stats.AccessErrors > 0 {
		tbl.AddRow("Skipped (access denied)", stats.AccessErrors)
	}
	if stats.ReadErrors > 0 {
		tbl.AddRow("Skipped (read failed)", stats.ReadErrors)
	}
	if stats.UnsupportedFiles > 0 {
		tbl.AddRow("Skipped (unsupported format)", stats.UnsupportedFiles)
	}
	if stats.IntegrityFailures > 0 {
		tbl.AddRow("Aborted actions (integrity)", stats.IntegrityFailures)
	}

	fmt.Fprintln(w)
	tbl.Print()
}
