package report

import (
	"fmt"
	"strings"
)

const bannerLine = "================================================================================"

const separatorLine = "--------------------------------------------------------------------------------"

// columnListFile renders the ready-to-copy column list artifact: per table,
// the referenced columns in five paste-ready sub-formats.
func (r *Reporter) columnListFile() string {
	var b strings.Builder

	b.WriteString(bannerLine + "\n")
	b.WriteString("DASHBOARD COLUMNS - READY TO COPY FOR SQL\n")
	b.WriteString("Generated by columnlens (run " + r.runID + ")\n")
	b.WriteString(bannerLine + "\n\n")

	for _, table := range r.analysis.ByTable.Tables() {
		columns := r.analysis.ByTable.Columns(table)

		backticked := make([]string, len(columns))
		for i, col := range columns {
			backticked[i] = "`" + col + "`"
		}

		b.WriteString("\n" + bannerLine + "\n")
		fmt.Fprintf(&b, "TABLE: %s\n", table)
		fmt.Fprintf(&b, "Column count: %d\n", len(columns))
		b.WriteString(bannerLine + "\n\n")

		b.WriteString("-- Format 1: Comma-separated (inline)\n")
		b.WriteString("-- Copy and paste after SELECT:\n")
		b.WriteString(strings.Join(columns, ", ") + "\n\n")

		b.WriteString("-- Format 2: Comma-separated with backticks (inline)\n")
		b.WriteString("-- Copy and paste after SELECT:\n")
		b.WriteString(strings.Join(backticked, ", ") + "\n\n")

		b.WriteString("-- Format 3: One column per line with backticks (formatted)\n")
		b.WriteString("-- Copy and paste after SELECT:\n")
		b.WriteString(strings.Join(backticked, ",\n    ") + "\n\n")

		b.WriteString("-- Format 4: Complete SELECT statement\n")
		b.WriteString("-- Ready to execute:\n")
		b.WriteString("SELECT\n    " + strings.Join(backticked, ",\n    ") + "\nFROM " + table + ";\n\n")

		b.WriteString("-- Format 5: Python/Spark list\n")
		b.WriteString("-- For use in PySpark select():\n")

		doubleQuoted := make([]string, len(columns))
		for i, col := range columns {
			doubleQuoted[i] = `"` + col + `"`
		}

		b.WriteString("columns = [" + strings.Join(doubleQuoted, ", ") + "]\n")
		b.WriteString("df.select(columns)\n\n")

		b.WriteString(separatorLine + "\n\n")
	}

	return b.String()
}
