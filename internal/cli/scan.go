package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quaylabs/chbridge/internal/adapter"
	"github.com/quaylabs/chbridge/internal/value"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Columns []string
	Where   []string
}

// NewScanCommand creates the scan command. It drives the adapter through a
// full scan sequence against the configured store and prints each row.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the foreign table and print rows",
		Long: `Scan the foreign table: deparse the conditions, execute the query,
and print the materialized rows one per line.

Example:
  chbridge scan -o people.cue --columns name,age --where "age > 30"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.Columns) == 0 {
				return fmt.Errorf("--columns is required")
			}
			o, err := loadOptions(opts.RootOptions)
			if err != nil {
				return err
			}
			quals, err := parseQuals(opts.Where)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			sess, dialect, err := connect(ctx, o)
			if err != nil {
				return err
			}
			a := adapter.New(sess, dialect, nil)
			defer a.Close()

			rows, width, err := a.PlanSize(ctx, quals, opts.Columns, nil, nil, o)
			if err != nil {
				return err
			}
			if opts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "planned %d rows, ~%d bytes/row\n", rows, width)
			}

			a.BeginScan()
			defer a.EndScan()
			for {
				row, ok, err := a.NextRow()
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatRow(row))
			}
		},
	}

	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "columns to select, in order")
	cmd.Flags().StringArrayVar(&opts.Where, "where", nil, "condition \"<column> <op> <literal>\" (repeatable)")

	return cmd
}

func formatRow(row value.Row) string {
	parts := make([]string, 0, row.Len())
	for _, p := range row.Pairs() {
		parts = append(parts, p.Column+"="+value.GoString(p.Cell))
	}
	return strings.Join(parts, "\t")
}
