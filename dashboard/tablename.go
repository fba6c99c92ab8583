package dashboard

import (
	"regexp"
	"strings"
)

// fromPattern matches the first FROM clause target, with optional
// catalog/schema qualification and optional backtick protection.
// Joins, subqueries and CTEs are not resolved; the first target is taken as
// the dataset's source table.
var fromPattern = regexp.MustCompile("(?i)\\bFROM\\s+(`[^`]+`(?:\\.`[^`]+`)*|[A-Za-z0-9_]+(?:\\.[A-Za-z0-9_]+)*)")

// SourceTable resolves the dataset's source table name. The direct source
// field wins; otherwise the joined query lines are scanned for a FROM clause.
// The second return value is false when no source could be resolved, in which
// case the dataset contributes no columns.
func (d Dataset) SourceTable() (string, bool) {
	if d.Source != "" {
		return d.Source, true
	}

	if len(d.QueryLines) > 0 {
		query := strings.Join(d.QueryLines, " ")
		if match := fromPattern.FindStringSubmatch(query); match != nil {
			return strings.ReplaceAll(match[1], "`", ""), true
		}
	}

	return "", false
}
