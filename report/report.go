// Package report turns the per-table column inventory produced by the
// dashboard package into the human-facing artifacts: ready-to-copy column
// lists plus generated system catalog queries (as SQL or PySpark) for
// fetching full column lists, upstream lineage, and unused columns. No query
// is ever executed here; everything is text for the user to run themselves.
package report

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shibukawa/columnlens/dashboard"
)

// Artifact is one generated output file
type Artifact struct {
	Name    string
	Content string
}

// Options configure artifact generation
type Options struct {
	// DefaultCatalog completes 2-part and 1-part table names in generated
	// catalog queries
	DefaultCatalog string
	// DefaultSchema completes 1-part table names
	DefaultSchema string
}

// Reporter generates artifacts from one analysis
type Reporter struct {
	analysis *dashboard.Analysis
	opts     Options
	runID    string
}

// NewReporter creates a Reporter. Each reporter carries a run id that is
// stamped into every artifact header so one batch of outputs can be
// correlated later.
func NewReporter(analysis *dashboard.Analysis, opts Options) *Reporter {
	if opts.DefaultCatalog == "" {
		opts.DefaultCatalog = "hive_metastore"
	}

	if opts.DefaultSchema == "" {
		opts.DefaultSchema = "default"
	}

	return &Reporter{
		analysis: analysis,
		opts:     opts,
		runID:    uuid.NewString(),
	}
}

// RunID returns the identifier stamped into this reporter's artifacts
func (r *Reporter) RunID() string {
	return r.runID
}

// Artifacts generates the artifact set for the given format. FormatBoth is a
// layout decision, not a content one: callers (the writer) expand it into the
// sql and python sets themselves.
func (r *Reporter) Artifacts(format Format) []Artifact {
	if format == FormatPython {
		return []Artifact{
			{Name: "00_COLUMNS_TO_COPY.txt", Content: r.columnListFile()},
			{Name: "01_table_columns.py", Content: r.tableColumnsPython()},
			{Name: "02_lineage.py", Content: r.lineagePython()},
			{Name: "03_unused_columns.py", Content: r.unusedColumnsPython()},
		}
	}

	return []Artifact{
		{Name: "00_COLUMNS_TO_COPY.txt", Content: r.columnListFile()},
		{Name: "01_table_columns.sql", Content: r.tableColumnsSQL()},
		{Name: "02_lineage.sql", Content: r.lineageSQL()},
		{Name: "03_unused_columns.sql", Content: r.unusedColumnsSQL()},
		{Name: "04_comparison_analysis.sql", Content: r.comparisonSQL()},
	}
}

// sqlHeader returns the provenance header for generated SQL artifacts
func (r *Reporter) sqlHeader() string {
	return "-- Generated by columnlens (run " + r.runID + ")\n"
}

// pyHeader returns the provenance header for generated Python artifacts
func (r *Reporter) pyHeader() string {
	return "# Generated by columnlens (run " + r.runID + ")\n"
}

// tableName is a fully resolved three-part table reference
type tableName struct {
	catalog string
	schema  string
	table   string
}

// String returns the dotted full name
func (n tableName) String() string {
	return n.catalog + "." + n.schema + "." + n.table
}

// splitTableName completes a possibly partial table reference with the
// configured default catalog and schema
func (r *Reporter) splitTableName(full string) tableName {
	parts := strings.Split(full, ".")
	switch len(parts) {
	case 3:
		return tableName{catalog: parts[0], schema: parts[1], table: parts[2]}
	case 2:
		return tableName{catalog: r.opts.DefaultCatalog, schema: parts[0], table: parts[1]}
	default:
		return tableName{catalog: r.opts.DefaultCatalog, schema: r.opts.DefaultSchema, table: full}
	}
}

// quoteList renders values as 'a', 'b', 'c' for SQL IN lists
func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}

	return strings.Join(quoted, ", ")
}
