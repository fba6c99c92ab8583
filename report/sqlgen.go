package report

import (
	"fmt"
	"strings"
)

// tableColumnsSQL generates the query fetching every column of every
// dashboard table from system.information_schema.columns
func (r *Reporter) tableColumnsSQL() string {
	// Group tables by catalog and schema, first-seen order
	type group struct {
		catalog string
		schema  string
		tables  []string
	}

	var (
		groups  []*group
		indexOf = map[string]*group{}
	)

	for _, full := range r.analysis.ByTable.Tables() {
		name := r.splitTableName(full)

		key := name.catalog + "." + name.schema
		g, ok := indexOf[key]
		if !ok {
			g = &group{catalog: name.catalog, schema: name.schema}
			indexOf[key] = g
			groups = append(groups, g)
		}

		g.tables = append(g.tables, name.table)
	}

	conditions := make([]string, 0, len(groups))

	for _, g := range groups {
		if len(g.tables) == 1 {
			conditions = append(conditions, fmt.Sprintf(
				"(table_catalog = '%s' AND table_schema = '%s' AND table_name = '%s')",
				g.catalog, g.schema, g.tables[0]))
		} else {
			conditions = append(conditions, fmt.Sprintf(
				"(table_catalog = '%s' AND table_schema = '%s' AND table_name IN (%s))",
				g.catalog, g.schema, quoteList(g.tables)))
		}
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, "\n    OR ")
	}

	var b strings.Builder

	b.WriteString(r.sqlHeader())
	b.WriteString("-- Query 1: Get all columns from tables used in dashboard\n")
	b.WriteString(`SELECT
    table_catalog,
    table_schema,
    table_name,
    CONCAT_WS('.', table_catalog, table_schema, table_name) AS full_table_name,
    column_name,
    data_type,
    ordinal_position,
    is_nullable,
    column_default
FROM system.information_schema.columns
WHERE
    `)
	b.WriteString(whereClause)
	b.WriteString(`
ORDER BY
    table_catalog,
    table_schema,
    table_name,
    ordinal_position;
`)

	return b.String()
}

// lineageSQL generates the query resolving upstream table lineage from
// system.access.table_lineage. Only fully qualified (3-part) dashboard
// tables can be matched against the lineage table.
func (r *Reporter) lineageSQL() string {
	var conditions []string

	for _, full := range r.analysis.ByTable.Tables() {
		parts := strings.Split(full, ".")
		if len(parts) != 3 {
			continue
		}

		conditions = append(conditions, fmt.Sprintf(
			"(target_table_catalog = '%s' AND target_table_schema = '%s' AND target_table_name = '%s')",
			parts[0], parts[1], parts[2]))
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, "\n        OR ")
	}

	var b strings.Builder

	b.WriteString(r.sqlHeader())
	b.WriteString("-- Query 2: Get upstream table lineage\n")
	fmt.Fprintf(&b, `WITH dashboard_tables AS (
    SELECT DISTINCT
        target_table_catalog,
        target_table_schema,
        target_table_name,
        CONCAT_WS('.', target_table_catalog, target_table_schema, target_table_name) AS target_table_full_name
    FROM system.access.table_lineage
    WHERE
        %s
),
upstream_lineage AS (
    SELECT
        dt.target_table_full_name AS dashboard_table,
        tl.source_table_catalog,
        tl.source_table_schema,
        tl.source_table_name,
        CONCAT_WS('.', tl.source_table_catalog, tl.source_table_schema, tl.source_table_name) AS upstream_table_full_name,
        tl.source_type
    FROM dashboard_tables dt
    INNER JOIN system.access.table_lineage tl
        ON dt.target_table_catalog = tl.target_table_catalog
        AND dt.target_table_schema = tl.target_table_schema
        AND dt.target_table_name = tl.target_table_name
)
SELECT DISTINCT
    dashboard_table,
    upstream_table_full_name,
    source_type
FROM upstream_lineage
ORDER BY dashboard_table, upstream_table_full_name;
`, whereClause)

	return b.String()
}

// unusedColumnsSQL generates the per-table queries listing columns that exist
// in the table but are not referenced by any dashboard widget
func (r *Reporter) unusedColumnsSQL() string {
	var queries []string

	for _, full := range r.analysis.ByTable.Tables() {
		name := r.splitTableName(full)
		columns := r.analysis.ByTable.Columns(full)

		var b strings.Builder

		fmt.Fprintf(&b, "-- Table: %s\n", full)
		fmt.Fprintf(&b, "-- Columns used in dashboard: %s\n", strings.Join(columns, ", "))
		fmt.Fprintf(&b, `SELECT
    '%s' AS table_name,
    column_name,
    data_type,
    ordinal_position
FROM system.information_schema.columns
WHERE table_catalog = '%s'
    AND table_schema = '%s'
    AND table_name = '%s'
    AND column_name NOT IN (%s)
ORDER BY ordinal_position
`, full, name.catalog, name.schema, name.table, quoteList(columns))

		queries = append(queries, b.String())
	}

	var b strings.Builder

	b.WriteString(r.sqlHeader())
	b.WriteString("-- Query 3: Find unused columns in dashboard tables\n")
	b.WriteString("-- Columns that exist in tables but are NOT referenced in any dashboard widget\n\n")
	b.WriteString(strings.Join(queries, "\nUNION ALL\n"))
	b.WriteString(";\n")

	return b.String()
}

// comparisonSQL generates the side-by-side comparison query: every column of
// every dashboard table, flagged USED or UNUSED
func (r *Reporter) comparisonSQL() string {
	var selects []string

	for _, full := range r.analysis.ByTable.Tables() {
		name := r.splitTableName(full)
		for _, col := range r.analysis.ByTable.Columns(full) {
			selects = append(selects, fmt.Sprintf(
				"    SELECT '%s' AS catalog, '%s' AS schema, '%s' AS table_name, '%s' AS column_name",
				name.catalog, name.schema, name.table, col))
		}
	}

	var b strings.Builder

	b.WriteString(r.sqlHeader())
	b.WriteString("-- Query 4: Comprehensive comparison - Dashboard columns vs System tables\n")
	fmt.Fprintf(&b, `WITH dashboard_columns AS (
%s
),
system_columns AS (
    SELECT
        table_catalog AS catalog,
        table_schema AS schema,
        table_name,
        column_name,
        data_type,
        ordinal_position
    FROM system.information_schema.columns
    WHERE CONCAT_WS('.', table_catalog, table_schema, table_name) IN (
        SELECT DISTINCT CONCAT_WS('.', catalog, schema, table_name)
        FROM dashboard_columns
    )
)
SELECT
    CONCAT_WS('.', sc.catalog, sc.schema, sc.table_name) AS full_table_name,
    sc.column_name,
    sc.data_type,
    sc.ordinal_position,
    CASE
        WHEN dc.column_name IS NOT NULL THEN 'YES'
        ELSE 'NO'
    END AS used_in_dashboard,
    CASE
        WHEN dc.column_name IS NULL THEN 'UNUSED'
        ELSE 'USED'
    END AS status
FROM system_columns sc
LEFT JOIN dashboard_columns dc
    ON sc.catalog = dc.catalog
    AND sc.schema = dc.schema
    AND sc.table_name = dc.table_name
    AND sc.column_name = dc.column_name
ORDER BY
    full_table_name,
    status DESC,
    ordinal_position;
`, strings.Join(selects, "\n    UNION ALL\n"))

	return b.String()
}
