package report

import (
	"fmt"
	"strings"
)

// tableColumnsPython generates PySpark code fetching every column of every
// dashboard table from the system catalog
func (r *Reporter) tableColumnsPython() string {
	var b strings.Builder

	b.WriteString(r.pyHeader())
	fmt.Fprintf(&b, `# Fetch all columns from dashboard tables using PySpark
from pyspark.sql import SparkSession

spark = SparkSession.builder.getOrCreate()

# Dashboard tables
dashboard_tables = [%s]

table_list = ", ".join(f"'{t}'" for t in dashboard_tables)

# Query system.information_schema.columns
system_columns_df = spark.sql(f'''
    SELECT
        CONCAT_WS('.', table_catalog, table_schema, table_name) AS full_table_name,
        column_name,
        data_type,
        ordinal_position
    FROM system.information_schema.columns
    WHERE CONCAT_WS('.', table_catalog, table_schema, table_name) IN ({table_list})
    ORDER BY full_table_name, ordinal_position
''')

display(system_columns_df)

# Get columns by table
columns_by_table = {}
for row in system_columns_df.collect():
    columns_by_table.setdefault(row.full_table_name, []).append(row.column_name)

print("Columns found in system tables:")
for table, columns in columns_by_table.items():
    print(f"\n{table}: {len(columns)} columns")
    print(f"  {', '.join(columns)}")
`, quoteList(r.analysis.ByTable.Tables()))

	return b.String()
}

// lineagePython generates PySpark code resolving upstream table lineage
func (r *Reporter) lineagePython() string {
	var b strings.Builder

	b.WriteString(r.pyHeader())
	fmt.Fprintf(&b, `# Query upstream table lineage using PySpark
from pyspark.sql import SparkSession

spark = SparkSession.builder.getOrCreate()

dashboard_tables = [%s]

table_list = ", ".join(f"'{t}'" for t in dashboard_tables)

lineage_df = spark.sql(f'''
    SELECT DISTINCT
        CONCAT_WS('.', target_table_catalog, target_table_schema, target_table_name) AS dashboard_table,
        CONCAT_WS('.', source_table_catalog, source_table_schema, source_table_name) AS upstream_table,
        source_type
    FROM system.access.table_lineage
    WHERE CONCAT_WS('.', target_table_catalog, target_table_schema, target_table_name)
        IN ({table_list})
    ORDER BY dashboard_table, upstream_table
''')

display(lineage_df)
`, quoteList(r.analysis.ByTable.Tables()))

	return b.String()
}

// unusedColumnsPython generates PySpark code flagging columns that are not
// referenced by any dashboard widget
func (r *Reporter) unusedColumnsPython() string {
	var entries []string

	for _, table := range r.analysis.ByTable.Tables() {
		entries = append(entries, fmt.Sprintf("    '%s': [%s],",
			table, quoteList(r.analysis.ByTable.Columns(table))))
	}

	var b strings.Builder

	b.WriteString(r.pyHeader())
	fmt.Fprintf(&b, `# Identify unused columns in dashboard tables
from pyspark.sql import SparkSession
from pyspark.sql.functions import col, when

spark = SparkSession.builder.getOrCreate()

# Dashboard column usage
dashboard_column_usage = {
%s
}

# Get all columns from system tables and mark usage
all_columns = []
for table_name, used_columns in dashboard_column_usage.items():
    df = spark.sql(f'''
        SELECT
            '{table_name}' AS table_name,
            column_name,
            data_type
        FROM system.information_schema.columns
        WHERE CONCAT_WS('.', table_catalog, table_schema, table_name) = '{table_name}'
    ''')

    df = df.withColumn('used_in_dashboard',
        when(col('column_name').isin(used_columns), 'YES').otherwise('NO'))

    all_columns.append(df)

unused_columns_df = all_columns[0]
for df in all_columns[1:]:
    unused_columns_df = unused_columns_df.union(df)

unused_only = unused_columns_df.filter(col('used_in_dashboard') == 'NO')

print("\nUnused columns by table:")
display(unused_only.orderBy('table_name', 'column_name'))

summary = unused_columns_df.groupBy('table_name', 'used_in_dashboard').count()
print("\nSummary:")
display(summary)
`, strings.Join(entries, "\n"))

	return b.String()
}
