// Package filter evaluates boolean expressions against harvested rows.
//
// Expressions use the expr language and see the row under the Row
// variable, plus a few case-insensitive string helpers:
//
//	Row.Year == "2023" && contains(Row.Affiliation, "harvard")
//	startsWith(Row.LastName, "Ng") || Row.Initials == "JK"
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jordanbk/pubmed-scraper/harvest"
)

// RowFilter is a compiled row filter expression.
type RowFilter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean.
func Compile(expression string) (*RowFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(harvest.Row{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &RowFilter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *RowFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single row.
func (f *RowFilter) Match(row harvest.Row) (bool, error) {
	out, err := expr.Run(f.program, buildEnv(row))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter expression: %w", err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not evaluate to a boolean")
	}
	return matched, nil
}

// Apply returns the rows matching the filter, preserving input order.
func Apply(f *RowFilter, rows []harvest.Row) ([]harvest.Row, error) {
	matched := make([]harvest.Row, 0, len(rows))
	for _, row := range rows {
		ok, err := f.Match(row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// buildEnv exposes the row and the string helpers to an expression.
func buildEnv(row harvest.Row) map[string]any {
	return map[string]any{
		"Row": row,

		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
