package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/quaylabs/chbridge/internal/adapter"
	"github.com/quaylabs/chbridge/internal/deparse"
	"github.com/quaylabs/chbridge/internal/options"
	"github.com/quaylabs/chbridge/internal/session"
	"github.com/quaylabs/chbridge/internal/value"
)

// Run drives the scenario's steps through a fresh adapter over a fake
// session and returns the observable trace, one event per line.
func (s *Scenario) Run(ctx context.Context) ([]string, error) {
	dialect, err := deparse.ForName(s.Dialect)
	if err != nil {
		return nil, err
	}

	fake := &session.Fake{}
	for _, sr := range s.Results {
		rs, err := scriptedResultSet(sr)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		fake.Script = append(fake.Script, rs)
	}

	a := adapter.New(fake, dialect, slog.New(slog.NewTextHandler(io.Discard, nil)))
	opts := options.Options{
		ConnString:  "fake://",
		Table:       s.Table,
		RowIDColumn: s.RowIDColumn,
		Dialect:     s.Dialect,
	}

	var trace []string
	emit := func(format string, args ...any) {
		trace = append(trace, fmt.Sprintf(format, args...))
	}

	for i, step := range s.Steps {
		switch {
		case step.Scan != nil:
			quals, err := qualsFromSpecs(step.Scan.Quals)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			rows, width, err := a.PlanSize(ctx, quals, step.Scan.Columns, nil, nil, opts)
			if err != nil {
				emit("error: %v", err)
				continue
			}
			emit("query: %s", fake.Queries[len(fake.Queries)-1])
			emit("plan: rows=%d width=%d", rows, width)
			a.BeginScan()
			for {
				row, ok, err := a.NextRow()
				if err != nil {
					emit("error: %v", err)
					break
				}
				if !ok {
					emit("eof")
					break
				}
				emit("row: %s", renderRow(row))
			}
			a.EndScan()

		case step.Insert != nil:
			row, err := rowFromNode(step.Insert.Row)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			a.BeginModify(opts)
			if err := a.InsertRow(ctx, row); err != nil {
				emit("error: %v", err)
			} else {
				emit("insert: %s", renderInsert(fake.Inserts[len(fake.Inserts)-1]))
			}
			a.EndModify()

		case step.Update != nil:
			rowID, err := cellFromAny(step.Update.RowID)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			row, err := rowFromNode(step.Update.Row)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			a.BeginModify(opts)
			if err := a.UpdateRow(ctx, rowID, row); err != nil {
				emit("error: %v", err)
			} else {
				emit("exec: %s", fake.Execs[len(fake.Execs)-1])
			}
			a.EndModify()

		case step.Delete != nil:
			rowID, err := cellFromAny(step.Delete.RowID)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			a.BeginModify(opts)
			if err := a.DeleteRow(ctx, rowID); err != nil {
				emit("error: %v", err)
			} else {
				emit("exec: %s", fake.Execs[len(fake.Execs)-1])
			}
			a.EndModify()

		default:
			return nil, fmt.Errorf("step %d: empty step", i)
		}
	}
	return trace, nil
}

func qualsFromSpecs(specs []QualSpec) ([]value.Qual, error) {
	quals := make([]value.Qual, 0, len(specs))
	for _, qs := range specs {
		c, err := cellFromAny(qs.Value)
		if err != nil {
			return nil, fmt.Errorf("qual on %s: %w", qs.Column, err)
		}
		quals = append(quals, value.Qual{Column: qs.Column, Operator: qs.Op, Value: c})
	}
	return quals, nil
}

func renderRow(row value.Row) string {
	parts := make([]string, 0, row.Len())
	for _, p := range row.Pairs() {
		parts = append(parts, p.Column+"="+value.GoString(p.Cell))
	}
	return strings.Join(parts, " ")
}

func renderInsert(ins session.RecordedInsert) string {
	var b strings.Builder
	b.WriteString("table=" + ins.Table)
	for _, r := range ins.Rows {
		b.WriteString(" (")
		b.WriteString(strings.Join(r.Columns, ", "))
		b.WriteString(") values (")
		vals := make([]string, len(r.Values))
		for i, v := range r.Values {
			vals[i] = renderWire(v)
		}
		b.WriteString(strings.Join(vals, ", "))
		b.WriteString(")")
	}
	return b.String()
}

func renderWire(v any) string {
	switch n := v.(type) {
	case string:
		return strconv.Quote(n)
	case bool:
		return strconv.FormatBool(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
