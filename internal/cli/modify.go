package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quaylabs/chbridge/internal/adapter"
	"github.com/quaylabs/chbridge/internal/value"
)

// NewInsertCommand creates the insert command. Rows come from a YAML file:
// a list of mappings, one per row, column order preserved.
func NewInsertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <rows.yaml>",
		Short: "Insert rows from a YAML file",
		Long: `Insert rows into the foreign table. The file is a YAML list of
mappings; columns absent from a mapping are omitted from that row's insert,
so the store's column defaults apply.

Example:
  chbridge insert -o people.cue new_people.yaml`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(args[0])
			if err != nil {
				return err
			}
			return withModify(cmd, rootOpts, func(a *adapter.Adapter) error {
				for i, row := range rows {
					if err := a.InsertRow(cmd.Context(), row); err != nil {
						return fmt.Errorf("row %d: %w", i, err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "inserted %d rows\n", len(rows))
				return nil
			})
		},
	}
	return cmd
}

// NewUpdateCommand creates the update command. The new row comes from a
// YAML mapping file; columns set to null are assigned NULL explicitly.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var rowID string

	cmd := &cobra.Command{
		Use:   "update <row.yaml>",
		Short: "Update the row addressed by --rowid",
		Long: `Update one row of the foreign table. Every column in the file gets an
explicit assignment; a null value assigns NULL.

Example:
  chbridge update -o people.cue --rowid 42 changed.yaml`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rowID == "" {
				return fmt.Errorf("--rowid is required")
			}
			rows, err := loadRows(args[0])
			if err != nil {
				return err
			}
			if len(rows) != 1 {
				return fmt.Errorf("update takes exactly one row, file has %d", len(rows))
			}
			return withModify(cmd, rootOpts, func(a *adapter.Adapter) error {
				if err := a.UpdateRow(cmd.Context(), parseLiteral(rowID), rows[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "updated 1 row")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rowID, "rowid", "", "row identifier literal")
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var rowID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the row addressed by --rowid",
		Long: `Delete one row of the foreign table.

Example:
  chbridge delete -o people.cue --rowid 42`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rowID == "" {
				return fmt.Errorf("--rowid is required")
			}
			return withModify(cmd, rootOpts, func(a *adapter.Adapter) error {
				if err := a.DeleteRow(cmd.Context(), parseLiteral(rowID)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "deleted 1 row")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rowID, "rowid", "", "row identifier literal")
	return cmd
}

// withModify runs fn inside a begin-modify / end-modify bracket on a fresh
// adapter over the configured store.
func withModify(cmd *cobra.Command, rootOpts *RootOptions, fn func(*adapter.Adapter) error) error {
	o, err := loadOptions(rootOpts)
	if err != nil {
		return err
	}
	sess, dialect, err := connect(cmd.Context(), o)
	if err != nil {
		return err
	}
	a := adapter.New(sess, dialect, nil)
	defer a.Close()

	a.BeginModify(o)
	defer a.EndModify()
	return fn(a)
}

// loadRows reads a YAML list of row mappings, preserving column order.
func loadRows(path string) ([]value.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode rows %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	list := doc.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: want a YAML list of row mappings", path)
	}
	rows := make([]value.Row, 0, len(list.Content))
	for i, node := range list.Content {
		row, err := rowFromMapping(node)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowFromMapping(node *yaml.Node) (value.Row, error) {
	var row value.Row
	if node.Kind != yaml.MappingNode {
		return row, fmt.Errorf("want a mapping of column to value")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return row, fmt.Errorf("column %s: %w", key, err)
		}
		c, err := cellFromScalar(raw)
		if err != nil {
			return row, fmt.Errorf("column %s: %w", key, err)
		}
		row.Push(key, c)
	}
	return row, nil
}

func cellFromScalar(v any) (value.Cell, error) {
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
