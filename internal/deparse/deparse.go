package deparse

import (
	"fmt"
	"strings"

	"github.com/quaylabs/chbridge/internal/value"
)

// Dialect renders protocol operations as query text for one remote store.
type Dialect interface {
	// Name identifies the dialect in configuration and logs.
	Name() string

	// Select renders a scan query. With no quals the result is exactly
	// "SELECT <columns> FROM <table>"; quals are joined with AND. The
	// rendered column order MUST match the caller's order - result-row
	// decoding depends on it.
	Select(columns []string, table string, quals []value.Qual) (string, error)

	// Update renders a full-row update filtered by the row identifier.
	// Every column of newRow except the identifier column gets an explicit
	// assignment: set-to-NULL for an absent cell, set-to-value otherwise.
	Update(table, rowIDColumn string, rowID value.Cell, newRow value.Row) (string, error)

	// Delete renders a delete filtered by the row identifier.
	Delete(table, rowIDColumn string, rowID value.Cell) (string, error)
}

// ForName resolves a configured dialect name. The empty name defaults to
// ClickHouse, the store this adapter was built for.
func ForName(name string) (Dialect, error) {
	switch name {
	case "", "clickhouse":
		return ClickHouse{}, nil
	case "ansi":
		return ANSI{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
}

// operators is the whitelist of comparison operators a qual may carry.
// Anything else is rejected before it can reach query text.
var operators = map[string]struct{}{
	"=": {}, "<>": {}, "!=": {}, "<": {}, "<=": {}, ">": {}, ">=": {}, "LIKE": {},
}

// whereClause renders quals as "<col> <op> <literal>" joined with AND,
// using the supplied literal renderer. Empty quals yield "".
func whereClause(quals []value.Qual, literal func(value.Cell) (string, error)) (string, error) {
	if len(quals) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(quals))
	for _, q := range quals {
		if _, ok := operators[q.Operator]; !ok {
			return "", fmt.Errorf("operator %q is not deparsable", q.Operator)
		}
		lit, err := literal(q.Value)
		if err != nil {
			return "", fmt.Errorf("qual on %s: %w", q.Column, err)
		}
		conds = append(conds, fmt.Sprintf("%s %s %s", q.Column, q.Operator, lit))
	}
	return strings.Join(conds, " AND "), nil
}

// setClause renders the assignment list of an update. The identifier column
// is skipped; absent cells become explicit NULL assignments.
func setClause(rowIDColumn string, newRow value.Row, literal func(value.Cell) (string, error)) (string, error) {
	sets := make([]string, 0, newRow.Len())
	for _, p := range newRow.Pairs() {
		if p.Column == rowIDColumn {
			continue
		}
		if _, absent := p.Cell.(value.Null); absent {
			sets = append(sets, p.Column+" = NULL")
			continue
		}
		lit, err := literal(p.Cell)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", p.Column, err)
		}
		sets = append(sets, p.Column+" = "+lit)
	}
	if len(sets) == 0 {
		return "", fmt.Errorf("update of %s has no assignable columns", rowIDColumn)
	}
	return strings.Join(sets, ", "), nil
}

func selectText(columns []string, table string, quals []value.Qual, literal func(value.Cell) (string, error)) (string, error) {
	where, err := whereClause(quals, literal)
	if err != nil {
		return "", err
	}
	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	if where != "" {
		sql += " WHERE " + where
	}
	return sql, nil
}
