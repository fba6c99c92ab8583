package dashboard

import (
	"testing"

	"github.com/shibukawa/columnlens/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalker() *Walker {
	return NewWalker(extractor.New(nil))
}

func TestWalkSingleDataset(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{
				Name:   "ds1",
				Source: "catalog.schema.orders",
				Fields: []Field{
					{Name: "order_id", Expression: "order_id"},
					{Name: "total", Expression: "SUM(amount) AS total"},
				},
			},
		},
	}

	usages, stats := newWalker().Walk(doc)
	require.Len(t, usages, 2)

	assert.Equal(t, Usage{Table: "catalog.schema.orders", Column: "order_id", DatasetID: "ds1", Kind: KindField}, usages[0])
	assert.Equal(t, "amount", usages[1].Column)
	assert.Equal(t, 2, stats.Expressions)
	assert.Equal(t, 0, stats.UnresolvedDatasets)
}

func TestWalkQualifierAgainstSource(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{
				Name:   "ds1",
				Source: "orders",
				Fields: []Field{{Expression: "orders.status AS s"}},
			},
		},
	}

	usages, _ := newWalker().Walk(doc)
	require.Len(t, usages, 1)
	assert.Equal(t, "status", usages[0].Column)
}

func TestWalkKindOrdering(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{
				Name:         "ds1",
				Source:       "orders",
				Sorts:        []Sort{{Expression: "sort_col"}},
				Filters:      []Filter{{Expression: "filter_col = 1"}},
				Aggregations: []Field{{Expression: "SUM(agg_col)"}},
				Fields:       []Field{{Expression: "field_col"}},
			},
		},
	}

	usages, _ := newWalker().Walk(doc)
	require.Len(t, usages, 4)

	// fields before aggregations before filters before sorts, regardless of
	// document key order
	assert.Equal(t, "field_col", usages[0].Column)
	assert.Equal(t, KindField, usages[0].Kind)
	assert.Equal(t, "agg_col", usages[1].Column)
	assert.Equal(t, KindAggregation, usages[1].Kind)
	assert.Equal(t, "filter_col", usages[2].Column)
	assert.Equal(t, KindFilter, usages[2].Kind)
	assert.Equal(t, "sort_col", usages[3].Column)
	assert.Equal(t, KindSort, usages[3].Kind)
}

func TestWalkDatasetListsBeforeWidgetQueries(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{
				Name:    "ds1",
				Source:  "orders",
				Fields:  []Field{{Expression: "own_field"}},
				Filters: []Filter{{Expression: "own_filter = 1"}},
			},
		},
		Pages: []Page{
			{
				DisplayName: "Overview",
				Layout: []LayoutItem{
					{
						Widget: Widget{
							Name: "w1",
							Queries: []QueryRef{
								{
									Query: Query{
										DatasetName: "ds1",
										Fields:      []Field{{Expression: "widget_field"}},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	usages, _ := newWalker().Walk(doc)
	require.Len(t, usages, 3)

	// the dataset's own lists are exhausted before any widget query, so a
	// widget field never precedes a dataset filter in first-seen order
	assert.Equal(t, "own_field", usages[0].Column)
	assert.Equal(t, "own_filter", usages[1].Column)
	assert.Equal(t, KindFilter, usages[1].Kind)
	assert.Equal(t, "widget_field", usages[2].Column)
	assert.Equal(t, "w1", usages[2].Widget)
}

func TestWalkWidgetQueries(t *testing.T) {
	doc, err := Load("testdata/sales_dashboard.json")
	require.NoError(t, err)

	usages, stats := newWalker().Walk(doc)

	// the scratch dataset has no FROM clause and is skipped
	assert.Equal(t, 1, stats.UnresolvedDatasets)
	assert.Equal(t, 1, stats.Filters)

	var orderColumns []string

	for _, usage := range usages {
		if usage.Table == "main.sales.orders" {
			orderColumns = append(orderColumns, usage.Column)
		}
	}

	assert.Equal(t, []string{"status", "order_amount", "order_date", "order_date"}, orderColumns)

	// provenance is attributed to the widget and page
	assert.Equal(t, "Revenue by status", usages[0].Widget)
	assert.Equal(t, "Overview", usages[0].Page)
	assert.Equal(t, "ds_orders", usages[0].DatasetID)
}

func TestWalkUnresolvedDataset(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{Name: "no_source", Fields: []Field{{Expression: "ghost_col"}}},
			{Name: "no_expressions", Source: "orders"},
			{Name: "ok", Source: "orders", Fields: []Field{{Expression: "real_col"}}},
		},
	}

	usages, stats := newWalker().Walk(doc)

	assert.Equal(t, 2, stats.UnresolvedDatasets)
	require.Len(t, usages, 1)
	assert.Equal(t, "real_col", usages[0].Column)
}

func TestWalkAmbiguousExpressionCounted(t *testing.T) {
	doc := &Document{
		Datasets: []Dataset{
			{
				Name:   "ds1",
				Source: "orders",
				Fields: []Field{
					{Expression: "*"},
					{Expression: "order_id"},
				},
			},
		},
	}

	usages, stats := newWalker().Walk(doc)

	assert.Equal(t, 1, stats.AmbiguousExpressions)
	require.Len(t, usages, 1)
	assert.Equal(t, "order_id", usages[0].Column)
}
