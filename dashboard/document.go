// Package dashboard models the Databricks AI/BI dashboard export document
// and walks it into a per-table column inventory. The export is loosely
// schematized, so every nested shape is an explicit optional-field struct and
// every access goes through a default-producing accessor: a missing key
// degrades to an empty value, never an error.
package dashboard

// Document is the root of a parsed dashboard export. It is immutable once
// loaded.
type Document struct {
	DisplayName string    `json:"displayName"`
	Datasets    []Dataset `json:"datasets"`
	Pages       []Page    `json:"pages"`
}

// Dataset is one dataset definition. Source is the direct table reference if
// the export carries one; most real exports only carry QueryLines, from which
// the source table is recovered (see SourceTable).
type Dataset struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Source       string   `json:"source"`
	QueryLines   []string `json:"queryLines"`
	Fields       []Field  `json:"fields"`
	Aggregations []Field  `json:"aggregations"`
	Filters      []Filter `json:"filters"`
	Sorts        []Sort   `json:"sorts"`
}

// Page is one dashboard page with its widget layout
type Page struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Layout      []LayoutItem `json:"layout"`
}

// LayoutItem is one positioned widget on a page
type LayoutItem struct {
	Widget Widget `json:"widget"`
}

// Widget is one visualization widget
type Widget struct {
	Name    string      `json:"name"`
	Spec    *WidgetSpec `json:"spec"`
	Queries []QueryRef  `json:"queries"`
}

// WidgetSpec carries presentation details; only the frame title is consumed
type WidgetSpec struct {
	Frame *Frame `json:"frame"`
}

// Frame holds the widget title
type Frame struct {
	Title string `json:"title"`
}

// Title returns the widget's display title, falling back to its name
func (w Widget) Title() string {
	if w.Spec != nil && w.Spec.Frame != nil && w.Spec.Frame.Title != "" {
		return w.Spec.Frame.Title
	}

	return w.Name
}

// QueryRef binds a widget to a query definition
type QueryRef struct {
	Name  string `json:"name"`
	Query Query  `json:"query"`
}

// Query is one widget query against a named dataset
type Query struct {
	DatasetName  string   `json:"datasetName"`
	Fields       []Field  `json:"fields"`
	Aggregations []Field  `json:"aggregations"`
	Filters      []Filter `json:"filters"`
	OrderBy      []Sort   `json:"orderBy"`
}

// Field is one projected field with its query expression
type Field struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// Filter is one filter predicate
type Filter struct {
	Expression string `json:"expression"`
}

// Sort is one sort key
type Sort struct {
	Expression string `json:"expression"`
	Direction  string `json:"direction"`
}
