package report

import (
	"strings"
	"testing"

	"github.com/shibukawa/columnlens"
	"github.com/shibukawa/columnlens/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *dashboard.Analysis {
	usages := []dashboard.Usage{
		{Table: "main.sales.orders", Column: "order_id", DatasetID: "ds1"},
		{Table: "main.sales.orders", Column: "amount", DatasetID: "ds1"},
		{Table: "sales.customers", Column: "customer_id", DatasetID: "ds2"},
		{Table: "events", Column: "event_type", DatasetID: "ds3"},
	}

	return dashboard.Aggregate(usages, dashboard.WalkStats{Expressions: 4})
}

func newTestReporter() *Reporter {
	return NewReporter(sampleAnalysis(), Options{})
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"sql", "python", "both"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), format)
	}

	_, err := ParseFormat("yaml")
	require.ErrorIs(t, err, columnlens.ErrUnknownFormat)
}

func TestSQLArtifactSet(t *testing.T) {
	artifacts := newTestReporter().Artifacts(FormatSQL)

	names := make([]string, len(artifacts))
	for i, artifact := range artifacts {
		names[i] = artifact.Name
	}

	assert.Equal(t, []string{
		"00_COLUMNS_TO_COPY.txt",
		"01_table_columns.sql",
		"02_lineage.sql",
		"03_unused_columns.sql",
		"04_comparison_analysis.sql",
	}, names)
}

func TestPythonArtifactSet(t *testing.T) {
	artifacts := newTestReporter().Artifacts(FormatPython)

	names := make([]string, len(artifacts))
	for i, artifact := range artifacts {
		names[i] = artifact.Name
	}

	assert.Equal(t, []string{
		"00_COLUMNS_TO_COPY.txt",
		"01_table_columns.py",
		"02_lineage.py",
		"03_unused_columns.py",
	}, names)
}

func TestColumnListFile(t *testing.T) {
	content := newTestReporter().columnListFile()

	assert.Contains(t, content, "TABLE: main.sales.orders")
	assert.Contains(t, content, "Column count: 2")
	assert.Contains(t, content, "order_id, amount")
	assert.Contains(t, content, "`order_id`, `amount`")
	assert.Contains(t, content, "SELECT\n    `order_id`,\n    `amount`\nFROM main.sales.orders;")
	assert.Contains(t, content, `columns = ["order_id", "amount"]`)

	// all five sub-formats are present
	for i := 1; i <= 5; i++ {
		assert.Contains(t, content, "-- Format "+string(rune('0'+i))+":")
	}
}

func TestTableColumnsSQL(t *testing.T) {
	content := newTestReporter().tableColumnsSQL()

	assert.Contains(t, content, "FROM system.information_schema.columns")
	assert.Contains(t, content, "(table_catalog = 'main' AND table_schema = 'sales' AND table_name = 'orders')")
	// 2-part and 1-part names are completed with defaults
	assert.Contains(t, content, "(table_catalog = 'hive_metastore' AND table_schema = 'sales' AND table_name = 'customers')")
	assert.Contains(t, content, "(table_catalog = 'hive_metastore' AND table_schema = 'default' AND table_name = 'events')")
}

func TestTableColumnsSQLGroupsTables(t *testing.T) {
	usages := []dashboard.Usage{
		{Table: "main.sales.orders", Column: "a"},
		{Table: "main.sales.customers", Column: "b"},
	}
	r := NewReporter(dashboard.Aggregate(usages, dashboard.WalkStats{}), Options{})

	content := r.tableColumnsSQL()
	assert.Contains(t, content, "table_name IN ('orders', 'customers')")
}

func TestTableColumnsSQLWithoutTables(t *testing.T) {
	r := NewReporter(dashboard.Aggregate(nil, dashboard.WalkStats{}), Options{})

	// an empty inventory must still produce a runnable query
	assert.Contains(t, r.tableColumnsSQL(), "1=1")
}

func TestLineageSQL(t *testing.T) {
	content := newTestReporter().lineageSQL()

	assert.Contains(t, content, "system.access.table_lineage")
	assert.Contains(t, content, "(target_table_catalog = 'main' AND target_table_schema = 'sales' AND target_table_name = 'orders')")
	// partial names cannot be matched against lineage
	assert.NotContains(t, content, "'customers'")
}

func TestLineageSQLWithoutQualifiedTables(t *testing.T) {
	usages := []dashboard.Usage{{Table: "orders", Column: "a"}}
	r := NewReporter(dashboard.Aggregate(usages, dashboard.WalkStats{}), Options{})

	assert.Contains(t, r.lineageSQL(), "1=1")
}

func TestUnusedColumnsSQL(t *testing.T) {
	content := newTestReporter().unusedColumnsSQL()

	assert.Contains(t, content, "-- Table: main.sales.orders")
	assert.Contains(t, content, "column_name NOT IN ('order_id', 'amount')")
	assert.Contains(t, content, "UNION ALL")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(content), ";"))
}

func TestComparisonSQL(t *testing.T) {
	content := newTestReporter().comparisonSQL()

	assert.Contains(t, content, "WITH dashboard_columns AS (")
	assert.Contains(t, content, "SELECT 'main' AS catalog, 'sales' AS schema, 'orders' AS table_name, 'order_id' AS column_name")
	assert.Contains(t, content, "'UNUSED'")
	assert.Contains(t, content, "LEFT JOIN dashboard_columns")
}

func TestPythonArtifacts(t *testing.T) {
	r := newTestReporter()

	tableColumns := r.tableColumnsPython()
	assert.Contains(t, tableColumns, "from pyspark.sql import SparkSession")
	assert.Contains(t, tableColumns, "'main.sales.orders', 'sales.customers', 'events'")

	unused := r.unusedColumnsPython()
	assert.Contains(t, unused, "'main.sales.orders': ['order_id', 'amount'],")
	assert.Contains(t, unused, "used_in_dashboard")
}

func TestRunIDStamped(t *testing.T) {
	r := newTestReporter()

	for _, artifact := range r.Artifacts(FormatSQL) {
		assert.Contains(t, artifact.Content, r.RunID(), "artifact %s is missing the run id", artifact.Name)
	}
}

func TestCustomCatalogDefaults(t *testing.T) {
	usages := []dashboard.Usage{{Table: "orders", Column: "a"}}
	r := NewReporter(dashboard.Aggregate(usages, dashboard.WalkStats{}), Options{
		DefaultCatalog: "unity",
		DefaultSchema:  "core",
	})

	content := r.tableColumnsSQL()
	assert.Contains(t, content, "table_catalog = 'unity' AND table_schema = 'core' AND table_name = 'orders'")
}
