// Package extractor reduces dashboard query expressions to the physical
// column identifiers they reference. It is a non-validating reader for a
// small SQL expression subset: function calls are unwrapped, aliases and
// literals are discarded, and qualifiers matching the owning table are
// stripped. Malformed input never fails, it degrades to a best-effort set.
package extractor

import (
	"strings"

	"github.com/shibukawa/columnlens/tokenizer"
)

// Extractor extracts column references from query expression strings
type Extractor struct {
	dialect *tokenizer.Dialect
}

// New creates an Extractor using the given dialect. A nil dialect falls back
// to the built-in keyword and function sets.
func New(dialect *tokenizer.Dialect) *Extractor {
	if dialect == nil {
		dialect = tokenizer.NewDialect()
	}

	return &Extractor{dialect: dialect}
}

// Result is the outcome of extracting one expression
type Result struct {
	// Columns holds the referenced identifiers in first-seen order
	Columns *ColumnSet
	// Ambiguous is set when the expression could not be confidently reduced
	// to identifiers (bare wildcard, unbalanced quoting)
	Ambiguous bool
}

// Extract returns the set of column identifiers referenced by expression.
// tableAlias is the owning dataset's source table; a qualifier matching it
// (or its trailing segments) is stripped, any other qualifier is preserved
// in dotted form rather than guessed away.
func (e *Extractor) Extract(expression, tableAlias string) Result {
	result := Result{Columns: NewColumnSet()}

	tokens, err := tokenizer.New(expression, e.dialect, tokenizer.Options{SkipWhitespace: true}).All()
	if err != nil {
		// Unbalanced quoting: keep whatever tokens were recovered
		result.Ambiguous = true
	}

	// A lone wildcard means "all columns", which cannot be resolved to
	// specific identifiers here. Surfaced upstream as a warning.
	if len(tokens) == 1 && tokens[0].Type == tokenizer.STAR {
		result.Ambiguous = true
		return result
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch token.Type {
		case tokenizer.KEYWORD:
			if strings.EqualFold(token.Value, "AS") && i+1 < len(tokens) && isIdentifier(tokens[i+1]) {
				// alias name is an output label, not a column
				i++
			}
		case tokenizer.IDENTIFIER:
			if i+1 < len(tokens) && tokens[i+1].Type == tokenizer.OPENED_PARENS {
				// call syntax: the name is a function, the arguments are
				// handled by the surrounding walk
				continue
			}

			if e.dialect.IsFunction(token.Value) {
				// paren-less function keyword such as CURRENT_DATE
				continue
			}

			i = e.resolveChain(tokens, i, tableAlias, &result)
		case tokenizer.QUOTED_IDENTIFIER:
			i = e.resolveChain(tokens, i, tableAlias, &result)
		default:
			// literals, operators, parameters, punctuation
		}
	}

	return result
}

// resolveChain consumes a dotted identifier chain starting at index i and
// records the resulting column reference. It returns the index of the last
// consumed token.
func (e *Extractor) resolveChain(tokens []tokenizer.Token, i int, tableAlias string, result *Result) int {
	parts := []string{tokens[i].Value}

	for i+2 < len(tokens) && tokens[i+1].Type == tokenizer.DOT {
		next := tokens[i+2]
		if isIdentifier(next) {
			parts = append(parts, next.Value)
			i += 2

			continue
		}

		if next.Type == tokenizer.STAR {
			// table.* is another "all columns" form
			result.Ambiguous = true
			return i + 2
		}

		break
	}

	if len(parts) == 1 {
		result.Columns.Add(parts[0])
		return i
	}

	qualifier := strings.Join(parts[:len(parts)-1], ".")
	column := parts[len(parts)-1]

	if qualifierMatches(qualifier, tableAlias) {
		result.Columns.Add(column)
	} else {
		result.Columns.Add(strings.Join(parts, "."))
	}

	return i
}

// qualifierMatches reports whether qualifier refers to the known table alias.
// The comparison is case-insensitive and accepts trailing segments of a fully
// qualified source: for source catalog.schema.orders both "orders" and
// "schema.orders" match.
func qualifierMatches(qualifier, tableAlias string) bool {
	if tableAlias == "" {
		return false
	}

	if strings.EqualFold(qualifier, tableAlias) {
		return true
	}

	qualParts := strings.Split(qualifier, ".")
	aliasParts := strings.Split(tableAlias, ".")

	if len(qualParts) > len(aliasParts) {
		return false
	}

	tail := aliasParts[len(aliasParts)-len(qualParts):]
	for i, part := range qualParts {
		if !strings.EqualFold(part, tail[i]) {
			return false
		}
	}

	return true
}

func isIdentifier(token tokenizer.Token) bool {
	return token.Type == tokenizer.IDENTIFIER || token.Type == tokenizer.QUOTED_IDENTIFIER
}
