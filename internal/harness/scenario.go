package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quaylabs/chbridge/internal/session"
	"github.com/quaylabs/chbridge/internal/value"
	"github.com/quaylabs/chbridge/internal/wire"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario; it is also the golden file name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Table and RowIDColumn form the table binding for every step.
	Table       string `yaml:"table"`
	RowIDColumn string `yaml:"rowid_column"`

	// Dialect selects the deparse dialect; empty means clickhouse.
	Dialect string `yaml:"dialect,omitempty"`

	// Results scripts the fake session's answers to successive scans.
	Results []ScriptedResult `yaml:"results,omitempty"`

	// Steps is the protocol sequence to drive.
	Steps []Step `yaml:"steps"`
}

// ScriptedResult is one scan's worth of remote rows, in wire form.
type ScriptedResult struct {
	Columns []string `yaml:"columns"`
	Types   []string `yaml:"types"`
	Rows    [][]any  `yaml:"rows"`
}

// Step is exactly one of scan, insert, update or delete.
type Step struct {
	Scan   *ScanStep   `yaml:"scan,omitempty"`
	Insert *InsertStep `yaml:"insert,omitempty"`
	Update *UpdateStep `yaml:"update,omitempty"`
	Delete *DeleteStep `yaml:"delete,omitempty"`
}

// ScanStep sizes and iterates one scan.
type ScanStep struct {
	Columns []string   `yaml:"columns"`
	Quals   []QualSpec `yaml:"quals,omitempty"`
}

// QualSpec is a pushed-down filter condition in YAML form.
type QualSpec struct {
	Column string `yaml:"column"`
	Op     string `yaml:"op"`
	Value  any    `yaml:"value"`
}

// InsertStep inserts one row. The row node keeps YAML document order, which
// the insert column list must preserve.
type InsertStep struct {
	Row yaml.Node `yaml:"row"`
}

// UpdateStep rewrites the row addressed by RowID.
type UpdateStep struct {
	RowID any       `yaml:"rowid"`
	Row   yaml.Node `yaml:"row"`
}

// DeleteStep removes the row addressed by RowID.
type DeleteStep struct {
	RowID any `yaml:"rowid"`
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// scriptedResultSet converts a ScriptedResult to the session form, coercing
// YAML scalars to the Go types the declared wire type produces on a real
// session. Values under an unrecognized type name pass through untouched so
// scenarios can exercise the unsupported-type path.
func scriptedResultSet(sr ScriptedResult) (*session.ResultSet, error) {
	rs := &session.ResultSet{Columns: sr.Columns, Types: sr.Types}
	for _, row := range sr.Rows {
		if len(row) != len(sr.Columns) {
			return nil, fmt.Errorf("scripted row has %d values, want %d", len(row), len(sr.Columns))
		}
		vals := make([]any, len(row))
		for i, v := range row {
			wv, err := wireScalar(sr.Types[i], v)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", sr.Columns[i], err)
			}
			vals[i] = wv
		}
		rs.Rows = append(rs.Rows, vals)
	}
	return rs, nil
}

func wireScalar(wireType string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch wireType {
	case wire.TypeUInt8:
		switch n := v.(type) {
		case int:
			return uint8(n), nil
		case bool:
			return n, nil
		}
	case wire.TypeInt64:
		if n, ok := v.(int); ok {
			return int64(n), nil
		}
	case wire.TypeFloat64:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
	case wire.TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	default:
		return v, nil
	}
	return nil, fmt.Errorf("cannot script %T as %s", v, wireType)
}

// cellFromAny converts a decoded YAML scalar to a host cell. YAML null maps
// to value.Null, the absent marker.
func cellFromAny(v any) (value.Cell, error) {
	switch n := v.(type) {
	case nil:
		return value.Null{}, nil
	case bool:
		return value.Bool(n), nil
	case int:
		return value.Int(n), nil
	case int64:
		return value.Int(n), nil
	case float64:
		return value.Float(n), nil
	case string:
		return value.String(n), nil
	default:
		return nil, fmt.Errorf("cannot express %T as a cell", v)
	}
}

// rowFromNode builds a Row from a YAML mapping node, preserving key order.
func rowFromNode(node yaml.Node) (value.Row, error) {
	var row value.Row
	if node.Kind == 0 {
		return row, nil
	}
	if node.Kind != yaml.MappingNode {
		return row, fmt.Errorf("row must be a mapping, got yaml kind %d", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return row, fmt.Errorf("row column %s: %w", key, err)
		}
		c, err := cellFromAny(raw)
		if err != nil {
			return row, fmt.Errorf("row column %s: %w", key, err)
		}
		row.Push(key, c)
	}
	return row, nil
}
