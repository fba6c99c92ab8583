package dashboard

import (
	"github.com/shibukawa/columnlens/extractor"
)

// Kind classifies where in a query an expression appeared
type Kind int

const (
	KindField Kind = iota
	KindAggregation
	KindFilter
	KindSort
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindAggregation:
		return "aggregation"
	case KindFilter:
		return "filter"
	case KindSort:
		return "sort"
	default:
		return "unknown"
	}
}

// Usage is one extracted column reference with its provenance
type Usage struct {
	Table     string
	Column    string
	DatasetID string
	Page      string
	Widget    string
	Kind      Kind
}

// WalkStats are the per-run counters surfaced in the analysis summary
type WalkStats struct {
	Expressions          int
	Filters              int
	UnresolvedDatasets   int
	AmbiguousExpressions int
}

// expressionSource is one expression string with its kind and widget provenance
type expressionSource struct {
	expression string
	kind       Kind
	page       string
	widget     string
}

// Walker walks a dashboard document and extracts column usages
type Walker struct {
	extractor *extractor.Extractor
}

// NewWalker creates a Walker using the given extractor
func NewWalker(ex *extractor.Extractor) *Walker {
	return &Walker{extractor: ex}
}

// Walk enumerates datasets in document order and extracts every expression
// bound to each of them. Within a dataset, the dataset's own lists come first
// (fields, then aggregations, filters, sorts), then widget-query expressions
// in page and layout order, so first-seen column order is deterministic. A
// dataset without a resolvable source table, or without any parseable
// expression, contributes nothing and is counted as unresolved.
func (w *Walker) Walk(doc *Document) ([]Usage, WalkStats) {
	var (
		usages []Usage
		stats  WalkStats
	)

	for _, dataset := range doc.Datasets {
		table, ok := dataset.SourceTable()
		if !ok {
			stats.UnresolvedDatasets++
			continue
		}

		sources := collectExpressions(doc, dataset)
		if len(sources) == 0 {
			stats.UnresolvedDatasets++
			continue
		}

		for _, src := range sources {
			if src.kind == KindFilter {
				stats.Filters++
			} else {
				stats.Expressions++
			}

			result := w.extractor.Extract(src.expression, table)
			if result.Ambiguous {
				stats.AmbiguousExpressions++
			}

			for _, column := range result.Columns.Values() {
				usages = append(usages, Usage{
					Table:     table,
					Column:    column,
					DatasetID: dataset.Name,
					Page:      src.page,
					Widget:    src.widget,
					Kind:      src.kind,
				})
			}
		}
	}

	return usages, stats
}

// collectExpressions gathers the dataset's expressions in walk order: the
// dataset's own lists first (fields, aggregations, filters, sorts), then
// expressions from widget queries bound to the dataset, pages and widgets in
// document order. Empty expression strings are dropped here.
func collectExpressions(doc *Document, dataset Dataset) []expressionSource {
	var sources []expressionSource

	add := func(kind Kind, expression, page, widget string) {
		if expression == "" {
			return
		}

		sources = append(sources, expressionSource{
			expression: expression,
			kind:       kind,
			page:       page,
			widget:     widget,
		})
	}

	for _, field := range dataset.Fields {
		add(KindField, field.Expression, "", "")
	}

	for _, agg := range dataset.Aggregations {
		add(KindAggregation, agg.Expression, "", "")
	}

	for _, filter := range dataset.Filters {
		add(KindFilter, filter.Expression, "", "")
	}

	for _, sort := range dataset.Sorts {
		add(KindSort, sort.Expression, "", "")
	}

	for _, page := range doc.Pages {
		for _, item := range page.Layout {
			widget := item.Widget
			for _, ref := range widget.Queries {
				query := ref.Query
				if query.DatasetName != dataset.Name {
					continue
				}

				for _, field := range query.Fields {
					add(KindField, field.Expression, page.DisplayName, widget.Title())
				}

				for _, agg := range query.Aggregations {
					add(KindAggregation, agg.Expression, page.DisplayName, widget.Title())
				}

				for _, filter := range query.Filters {
					add(KindFilter, filter.Expression, page.DisplayName, widget.Title())
				}

				for _, sort := range query.OrderBy {
					add(KindSort, sort.Expression, page.DisplayName, widget.Title())
				}
			}
		}
	}

	return sources
}
