package deparse

import (
	"fmt"

	"github.com/quaylabs/chbridge/internal/value"
	"github.com/quaylabs/chbridge/internal/wire"
)

// ClickHouse renders the analytical store's dialect. Row mutations are
// expressed as lightweight-mutation statements (ALTER TABLE ... UPDATE /
// DELETE) rather than ANSI UPDATE/DELETE.
type ClickHouse struct{}

func (ClickHouse) Name() string { return "clickhouse" }

func (ClickHouse) Select(columns []string, table string, quals []value.Qual) (string, error) {
	return selectText(columns, table, quals, wire.Literal)
}

func (ClickHouse) Update(table, rowIDColumn string, rowID value.Cell, newRow value.Row) (string, error) {
	sets, err := setClause(rowIDColumn, newRow, wire.Literal)
	if err != nil {
		return "", err
	}
	idLit, err := wire.Literal(rowID)
	if err != nil {
		return "", fmt.Errorf("row identifier: %w", err)
	}
	return fmt.Sprintf("ALTER TABLE %s UPDATE %s WHERE %s = %s", table, sets, rowIDColumn, idLit), nil
}

func (ClickHouse) Delete(table, rowIDColumn string, rowID value.Cell) (string, error) {
	idLit, err := wire.Literal(rowID)
	if err != nil {
		return "", fmt.Errorf("row identifier: %w", err)
	}
	return fmt.Sprintf("ALTER TABLE %s DELETE WHERE %s = %s", table, rowIDColumn, idLit), nil
}
