package tokenizer

import "strings"

// Dialect holds the keyword and function-name sets used to classify words in
// dashboard query expressions. Both sets are data, not code: platform-specific
// functions can be added per project without touching the tokenizer.
type Dialect struct {
	keywords  map[string]struct{}
	functions map[string]struct{}
}

// defaultKeywords is the reserved word set for Spark SQL style expressions as
// they appear in dashboard exports. Keywords are never column references.
var defaultKeywords = []string{
	"AND", "OR", "NOT", "IN", "IS", "NULL", "LIKE", "RLIKE", "REGEXP",
	"BETWEEN", "EXISTS", "TRUE", "FALSE",
	"CASE", "WHEN", "THEN", "ELSE", "END",
	"AS", "DISTINCT", "ALL", "ANY",
	"SELECT", "FROM", "WHERE", "GROUP", "HAVING", "ORDER", "BY",
	"ASC", "DESC", "NULLS", "FIRST", "LAST", "LIMIT",
	"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS", "ON", "USING",
	"UNION", "INTERSECT", "EXCEPT",
	"OVER", "PARTITION", "ROWS", "RANGE", "UNBOUNDED", "PRECEDING",
	"FOLLOWING", "CURRENT", "ROW",
	"INTERVAL", "DIV", "MOD", "ESCAPE",
}

// defaultFunctions holds function names recognized without call syntax. The
// set is deliberately tiny: a parenthesized call is identified by its syntax
// alone, and a bare word spelled like a function (month, size, hash) is far
// more likely to be a column than a niladic call. Only names that appear
// paren-less in real dashboard expressions belong here.
var defaultFunctions = []string{
	"CURRENT_DATE", "CURRENT_TIMESTAMP", "NOW", "TODAY",
}

// NewDialect creates a dialect with the built-in keyword and function sets
func NewDialect() *Dialect {
	d := &Dialect{
		keywords:  make(map[string]struct{}, len(defaultKeywords)),
		functions: make(map[string]struct{}, len(defaultFunctions)),
	}

	for _, kw := range defaultKeywords {
		d.keywords[kw] = struct{}{}
	}

	for _, fn := range defaultFunctions {
		d.functions[fn] = struct{}{}
	}

	return d
}

// WithKeywords returns the dialect with additional reserved words registered
func (d *Dialect) WithKeywords(names ...string) *Dialect {
	for _, name := range names {
		if name != "" {
			d.keywords[strings.ToUpper(name)] = struct{}{}
		}
	}

	return d
}

// WithFunctions returns the dialect with additional paren-less function names
// registered. Parenthesized calls need no registration.
func (d *Dialect) WithFunctions(names ...string) *Dialect {
	for _, name := range names {
		if name != "" {
			d.functions[strings.ToUpper(name)] = struct{}{}
		}
	}

	return d
}

// IsKeyword reports whether word is a reserved word (case-insensitive)
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToUpper(word)]
	return ok
}

// IsFunction reports whether word is a function reference even without call
// syntax (case-insensitive)
func (d *Dialect) IsFunction(word string) bool {
	_, ok := d.functions[strings.ToUpper(word)]
	return ok
}
