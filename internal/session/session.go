package session

import "context"

// Session executes query text against one remote store.
//
// Implementations block until the remote request completes; there is no
// cancellation beyond the passed context. Any error is fatal for the
// statement that produced it - retry belongs to layers above.
type Session interface {
	// Query executes a scan query and materializes the whole result.
	Query(ctx context.Context, query string) (*ResultSet, error)

	// Exec executes a statement that returns no rows.
	Exec(ctx context.Context, statement string) error

	// InsertBatch inserts pre-converted wire rows into table as a single
	// statement. Each row lists only the columns it carries.
	InsertBatch(ctx context.Context, table string, rows []InsertRow) error

	// Close releases the underlying handle.
	Close() error
}

// InsertRow is one row of an insert batch in wire form: parallel column
// names and wire values, already converted by the wire mapper.
type InsertRow struct {
	Columns []string
	Values  []any
}

// ResultSet is an immutable in-memory materialization of one query's rows.
// Columns and Types are parallel; Types holds canonical wire type names
// (or the store's raw name when it has no canonical mapping, in which case
// decoding the column fails with a TypeError).
type ResultSet struct {
	Columns []string
	Types   []string
	Rows    [][]any
}

// RowCount returns the number of materialized rows.
func (rs *ResultSet) RowCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// ColumnCount returns the number of columns.
func (rs *ResultSet) ColumnCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Columns)
}
