package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintArtifacts writes the artifact set to w with banner headers, for
// console-only runs where nothing is saved to disk
func (r *Reporter) PrintArtifacts(w io.Writer, format Format) {
	if format == FormatBoth {
		r.PrintArtifacts(w, FormatSQL)
		r.PrintArtifacts(w, FormatPython)

		return
	}

	for _, artifact := range r.Artifacts(format) {
		fmt.Fprintln(w, bannerLine)
		fmt.Fprintf(w, "ARTIFACT: %s\n", artifact.Name)
		fmt.Fprintln(w, bannerLine)
		fmt.Fprintln(w, artifact.Content)
	}
}

// PrintSummary renders the analysis summary: run counters, a per-table column
// count table, and a troubleshooting hint when nothing was found.
func (r *Reporter) PrintSummary(w io.Writer) {
	summary := r.analysis.Summary

	fmt.Fprintln(w, bannerLine)
	fmt.Fprintln(w, "ANALYSIS SUMMARY")
	fmt.Fprintln(w, bannerLine)
	fmt.Fprintf(w, "Tables analyzed:      %d\n", summary.TablesAnalyzed)
	fmt.Fprintf(w, "Unique columns used:  %d\n", summary.UniqueColumns)
	fmt.Fprintf(w, "Field expressions:    %d\n", summary.Expressions)
	fmt.Fprintf(w, "Filter expressions:   %d\n", summary.Filters)

	if summary.UnresolvedDatasets > 0 {
		color.New(color.FgYellow).Fprintf(w, "Unresolved datasets:  %d (skipped, no source table or no expressions)\n", summary.UnresolvedDatasets)
	}

	if summary.AmbiguousExpressions > 0 {
		color.New(color.FgYellow).Fprintf(w, "Ambiguous expressions: %d (wildcards or unbalanced quoting, best-effort extraction)\n", summary.AmbiguousExpressions)
	}

	if summary.UniqueColumns == 0 {
		color.New(color.FgYellow).Fprintln(w, "\nNo columns were found. The export probably does not match the expected")
		color.New(color.FgYellow).Fprintln(w, "dashboard shape; re-export the dashboard from the UI and try again.")

		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Columns used"})

	for _, name := range r.analysis.ByTable.Tables() {
		t.AppendRow(table.Row{name, len(r.analysis.ByTable.Columns(name))})
	}

	fmt.Fprintln(w)
	t.Render()
}

// PrintNextSteps prints the follow-up guidance shown after a save
func PrintNextSteps(w io.Writer, outputDir string) {
	color.New(color.FgGreen).Fprintf(w, "\nAll artifacts saved to: %s\n", outputDir)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Run the generated queries in your SQL warehouse")
	fmt.Fprintln(w, "  2. Review unused columns in 03_unused_columns")
	fmt.Fprintln(w, "  3. Check upstream lineage in 02_lineage")
	fmt.Fprintln(w, "  4. Optimize ETL pipelines by removing unused columns")
}
