package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/quaylabs/chbridge/internal/wire"
)

// SQL is a Session over database/sql, for stores that speak the ANSI
// dialect. Wired up with mattn/go-sqlite3 in tests and in the CLI's local
// mode; any registered driver works.
type SQL struct {
	db *sql.DB
}

// OpenSQL acquires a database/sql handle and verifies it with a ping.
func OpenSQL(ctx context.Context, driverName, dsn string) (*SQL, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, connectionError("open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, connectionError("ping", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Query(ctx context.Context, query string) (*ResultSet, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, queryError("query", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, queryError("columns", err)
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, queryError("column types", err)
	}
	rs := &ResultSet{
		Columns: cols,
		Types:   make([]string, len(colTypes)),
	}
	for i, ct := range colTypes {
		rs.Types[i] = canonicalTypeName(ct.DatabaseTypeName())
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, queryError("scan", err)
		}
		rs.Rows = append(rs.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("fetch", err)
	}
	return rs, nil
}

func (s *SQL) Exec(ctx context.Context, statement string) error {
	if _, err := s.db.ExecContext(ctx, statement); err != nil {
		return queryError("exec", err)
	}
	return nil
}

func (s *SQL) InsertBatch(ctx context.Context, table string, rows []InsertRow) error {
	if len(rows) == 0 {
		return nil
	}
	cols := rows[0].Columns
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	groups := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*len(cols))
	for _, r := range rows {
		if !equalColumns(cols, r.Columns) {
			return queryError("insert", fmt.Errorf("rows in one batch must share a column list"))
		}
		groups = append(groups, placeholders)
		args = append(args, r.Values...)
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(cols, ", "), strings.Join(groups, ", "))
	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return queryError("insert", err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// canonicalTypeName maps a driver's declared column type to the mapper's
// canonical wire names. Unknown names pass through unchanged, so decoding
// the column reports the store's own type name in the error.
func canonicalTypeName(declared string) string {
	switch strings.ToUpper(declared) {
	case "BOOLEAN", "BOOL", "TINYINT":
		return wire.TypeUInt8
	case "INTEGER", "INT", "BIGINT", "SMALLINT", "INT2", "INT4", "INT8":
		return wire.TypeInt64
	case "REAL", "FLOAT", "DOUBLE", "DOUBLE PRECISION", "NUMERIC":
		return wire.TypeFloat64
	case "TEXT", "VARCHAR", "CHAR", "CHARACTER", "CLOB", "NVARCHAR":
		return wire.TypeString
	default:
		return declared
	}
}
