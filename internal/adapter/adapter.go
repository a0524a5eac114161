package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quaylabs/chbridge/internal/deparse"
	"github.com/quaylabs/chbridge/internal/options"
	"github.com/quaylabs/chbridge/internal/session"
	"github.com/quaylabs/chbridge/internal/value"
	"github.com/quaylabs/chbridge/internal/wire"
)

// state tracks which protocol phase the adapter is in.
type state int

const (
	stateIdle state = iota
	stateSized
	stateScanning
	stateModifying
)

// Sort is a sort hint from the planner. Accepted for contract shape;
// ordering is not pushed down.
type Sort struct {
	Column     string
	Descending bool
}

// Limit is a limit hint from the planner. Accepted for contract shape;
// limits are not pushed down.
type Limit struct {
	Count  int64
	Offset int64
}

// Adapter is the foreign-table state machine. One instance serves one
// foreign table reference, holds its session for the instance's lifetime,
// and is driven through one operation at a time - it is not safe for
// concurrent use and does not need to be.
type Adapter struct {
	sess    session.Session
	dialect deparse.Dialect
	log     *slog.Logger

	state    state
	table    string
	rowIDCol string

	rs     *session.ResultSet
	rowIdx int

	stmtToken string
}

// New creates an adapter over an acquired session. A nil session is legal
// and mirrors a failed acquisition the caller chose to report rather than
// abort on: scans size to (0, 0) and modifies fail.
func New(sess session.Session, dialect deparse.Dialect, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{sess: sess, dialect: dialect, log: log}
}

// PlanSize deparses the scan, executes it eagerly and materializes the full
// result set. It returns the row count and an approximate per-row width in
// bytes; width is column-count proportional, not measured. Sort and limit
// hints are accepted but not pushed down. With no session it reports (0, 0).
func (a *Adapter) PlanSize(ctx context.Context, quals []value.Qual, columns []string, _ []Sort, _ *Limit, opts options.Options) (int64, int32, error) {
	if a.state == stateScanning || a.state == stateModifying {
		return 0, 0, fmt.Errorf("plan: statement already active")
	}
	if a.sess == nil {
		return 0, 0, nil
	}
	a.bindStatement(opts)

	query, err := a.dialect.Select(columns, a.table, quals)
	if err != nil {
		return 0, 0, fmt.Errorf("deparse scan: %w", err)
	}
	a.log.Debug("executing scan query", "stmt", a.stmtToken, "query", query)

	rs, err := a.sess.Query(ctx, query)
	if err != nil {
		a.log.Error("query failed", "stmt", a.stmtToken, "error", err)
		return 0, 0, fmt.Errorf("query failed: %w", err)
	}
	a.rs = rs
	a.rowIdx = 0
	a.state = stateSized
	return int64(rs.RowCount()), int32(rs.ColumnCount() * 8), nil
}

// BeginScan resets the read cursor. Idempotent with respect to a freshly
// sized result set.
func (a *Adapter) BeginScan() {
	a.rowIdx = 0
	a.state = stateScanning
}

// NextRow returns the next row of the materialized result, converting each
// cell through the wire mapper. The second return is false at end of data -
// which is a signal, not an error, and stays false on further calls.
//
// A cell with an unsupported wire type fails the scan: the error is
// returned once and the remainder of the result is abandoned. Rows already
// returned stay valid.
func (a *Adapter) NextRow() (value.Row, bool, error) {
	if a.rs == nil || a.rowIdx >= a.rs.RowCount() {
		return value.Row{}, false, nil
	}

	idx := a.rowIdx
	raw := a.rs.Rows[idx]
	var row value.Row
	for i, col := range a.rs.Columns {
		if raw[i] == nil {
			row.Push(col, value.Null{})
			continue
		}
		c, err := wire.ToCell(a.rs.Types[i], raw[i])
		if err != nil {
			// Abandon the rest of the scan; later calls report end of data.
			a.rowIdx = a.rs.RowCount()
			var te *wire.TypeError
			if errors.As(err, &te) {
				te.Column = col
			}
			a.log.Error("row decode failed", "stmt", a.stmtToken, "column", col, "error", err)
			return value.Row{}, false, fmt.Errorf("decode row %d: %w", idx, err)
		}
		row.Push(col, c)
	}

	a.rowIdx++
	return row, true, nil
}

// EndScan discards the materialized result. Cursor state is meaningless
// until the next PlanSize.
func (a *Adapter) EndScan() {
	a.rs = nil
	a.rowIdx = 0
	a.state = stateIdle
}

// BeginModify resolves the table binding for a modify statement. No remote
// call is made yet.
func (a *Adapter) BeginModify(opts options.Options) {
	a.bindStatement(opts)
	a.state = stateModifying
}

// InsertRow converts the row's present cells to a single-row wire batch and
// submits it as one insert statement. Absent cells are omitted from the
// value list entirely - the store's column defaults apply, not explicit
// NULL. Contrast with UpdateRow, which assigns NULL for absent cells.
func (a *Adapter) InsertRow(ctx context.Context, row value.Row) error {
	if err := a.modifyReady("insert"); err != nil {
		return err
	}
	ins := session.InsertRow{}
	for _, p := range row.Pairs() {
		if _, absent := p.Cell.(value.Null); absent {
			continue
		}
		wv, err := wire.ToWire(p.Cell)
		if err != nil {
			return fmt.Errorf("insert column %s: %w", p.Column, err)
		}
		ins.Columns = append(ins.Columns, p.Column)
		ins.Values = append(ins.Values, wv)
	}
	a.log.Debug("inserting row", "stmt", a.stmtToken, "table", a.table, "columns", len(ins.Columns))
	if err := a.sess.InsertBatch(ctx, a.table, []session.InsertRow{ins}); err != nil {
		a.log.Error("insert failed", "stmt", a.stmtToken, "error", err)
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

// UpdateRow rewrites the row addressed by rowID. Every column of newRow
// except the identifier column gets an explicit assignment; absent cells
// are set to NULL rather than skipped. The asymmetry with InsertRow is
// deliberate: an update must overwrite stale values, an insert must let
// column defaults stand.
func (a *Adapter) UpdateRow(ctx context.Context, rowID value.Cell, newRow value.Row) error {
	if err := a.modifyReady("update"); err != nil {
		return err
	}
	stmt, err := a.dialect.Update(a.table, a.rowIDCol, rowID, newRow)
	if err != nil {
		return fmt.Errorf("deparse update: %w", err)
	}
	a.log.Debug("executing update", "stmt", a.stmtToken, "statement", stmt)
	if err := a.sess.Exec(ctx, stmt); err != nil {
		a.log.Error("update failed", "stmt", a.stmtToken, "error", err)
		return fmt.Errorf("update failed: %w", err)
	}
	return nil
}

// DeleteRow removes the row addressed by rowID.
func (a *Adapter) DeleteRow(ctx context.Context, rowID value.Cell) error {
	if err := a.modifyReady("delete"); err != nil {
		return err
	}
	stmt, err := a.dialect.Delete(a.table, a.rowIDCol, rowID)
	if err != nil {
		return fmt.Errorf("deparse delete: %w", err)
	}
	a.log.Debug("executing delete", "stmt", a.stmtToken, "statement", stmt)
	if err := a.sess.Exec(ctx, stmt); err != nil {
		a.log.Error("delete failed", "stmt", a.stmtToken, "error", err)
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// EndModify clears statement-scoped state. No remote action.
func (a *Adapter) EndModify() {
	a.table = ""
	a.rowIDCol = ""
	a.state = stateIdle
}

// Close releases the held session.
func (a *Adapter) Close() error {
	if a.sess == nil {
		return nil
	}
	return a.sess.Close()
}

// bindStatement re-resolves the table binding and mints a statement token.
// Called at the start of every scan or modify so bindings never leak from
// one statement into the next.
func (a *Adapter) bindStatement(opts options.Options) {
	a.table = opts.Table
	a.rowIDCol = opts.RowIDColumn
	a.stmtToken = uuid.Must(uuid.NewV7()).String()
}

func (a *Adapter) modifyReady(op string) error {
	if a.state != stateModifying {
		return fmt.Errorf("%s: no modify in progress", op)
	}
	if a.sess == nil {
		return fmt.Errorf("%s: no session available", op)
	}
	return nil
}
