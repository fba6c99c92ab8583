package dashboard

import (
	"github.com/shibukawa/columnlens/extractor"
)

// TableColumnMap maps fully qualified table names to their referenced
// columns. Both the table order and the per-table column order are first-seen
// order, so identical input always produces identical output.
type TableColumnMap struct {
	tables  []string
	columns map[string]*extractor.ColumnSet
}

// NewTableColumnMap creates an empty TableColumnMap
func NewTableColumnMap() *TableColumnMap {
	return &TableColumnMap{
		columns: make(map[string]*extractor.ColumnSet),
	}
}

// Add records that table references column. Duplicates are ignored
// (case-sensitively: two spellings differing in case are distinct columns).
func (m *TableColumnMap) Add(table, column string) {
	set, ok := m.columns[table]
	if !ok {
		set = extractor.NewColumnSet()
		m.columns[table] = set
		m.tables = append(m.tables, table)
	}

	set.Add(column)
}

// Tables returns the table names in first-seen order
func (m *TableColumnMap) Tables() []string {
	return m.tables
}

// Columns returns the columns referenced by table, in first-seen order
func (m *TableColumnMap) Columns(table string) []string {
	if set, ok := m.columns[table]; ok {
		return set.Values()
	}

	return nil
}

// Len returns the number of tables in the map
func (m *TableColumnMap) Len() int {
	return len(m.tables)
}

// Summary holds the run counters reported to the user so that result
// completeness can be judged (zero unique columns usually means the document
// shape did not match).
type Summary struct {
	TablesAnalyzed       int
	UniqueColumns        int
	Expressions          int
	Filters              int
	UnresolvedDatasets   int
	AmbiguousExpressions int
}

// Analysis is the terminal artifact of the extraction pipeline
type Analysis struct {
	ByTable *TableColumnMap
	Usages  []Usage
	Summary Summary
}

// Aggregate merges extracted usages into a per-table column map and computes
// the run summary. UniqueColumns counts distinct identifiers across all
// tables.
func Aggregate(usages []Usage, stats WalkStats) *Analysis {
	byTable := NewTableColumnMap()
	allColumns := extractor.NewColumnSet()

	for _, usage := range usages {
		byTable.Add(usage.Table, usage.Column)
		allColumns.Add(usage.Column)
	}

	return &Analysis{
		ByTable: byTable,
		Usages:  usages,
		Summary: Summary{
			TablesAnalyzed:       byTable.Len(),
			UniqueColumns:        allColumns.Len(),
			Expressions:          stats.Expressions,
			Filters:              stats.Filters,
			UnresolvedDatasets:   stats.UnresolvedDatasets,
			AmbiguousExpressions: stats.AmbiguousExpressions,
		},
	}
}

// Analyze runs the full walk-and-aggregate pipeline over a loaded document
func Analyze(doc *Document, ex *extractor.Extractor) *Analysis {
	usages, stats := NewWalker(ex).Walk(doc)
	return Aggregate(usages, stats)
}
