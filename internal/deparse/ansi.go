package deparse

import (
	"fmt"
	"strings"

	"github.com/quaylabs/chbridge/internal/value"
	"github.com/quaylabs/chbridge/internal/wire"
)

// ANSI renders plain SQL for stores reached through database/sql. String
// literals use quote doubling instead of backslash escaping - backslash is
// an ordinary character in ANSI string literals.
type ANSI struct{}

func (ANSI) Name() string { return "ansi" }

func (ANSI) Select(columns []string, table string, quals []value.Qual) (string, error) {
	return selectText(columns, table, quals, ansiLiteral)
}

func (ANSI) Update(table, rowIDColumn string, rowID value.Cell, newRow value.Row) (string, error) {
	sets, err := setClause(rowIDColumn, newRow, ansiLiteral)
	if err != nil {
		return "", err
	}
	idLit, err := ansiLiteral(rowID)
	if err != nil {
		return "", fmt.Errorf("row identifier: %w", err)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s", table, sets, rowIDColumn, idLit), nil
}

func (ANSI) Delete(table, rowIDColumn string, rowID value.Cell) (string, error) {
	idLit, err := ansiLiteral(rowID)
	if err != nil {
		return "", fmt.Errorf("row identifier: %w", err)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s = %s", table, rowIDColumn, idLit), nil
}

func ansiLiteral(c value.Cell) (string, error) {
	if s, ok := c.(value.String); ok {
		return "'" + strings.ReplaceAll(string(s), "'", "''") + "'", nil
	}
	return wire.Literal(c)
}
