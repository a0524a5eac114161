package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quaylabs/chbridge/internal/deparse"
)

// DeparseOptions holds flags for the deparse command.
type DeparseOptions struct {
	*RootOptions
	Table   string
	Dialect string
	Columns []string
	Where   []string
}

// NewDeparseCommand creates the deparse command. It renders the scan query
// offline - no remote connection is made.
func NewDeparseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeparseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "deparse",
		Short: "Render the scan query for a column list and conditions",
		Long: `Render the query a scan would send to the remote store, without
connecting to it.

Example:
  chbridge deparse --table people --columns name,age --where "age > 30"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Table == "" {
				return fmt.Errorf("--table is required")
			}
			if len(opts.Columns) == 0 {
				return fmt.Errorf("--columns is required")
			}
			dialect, err := deparse.ForName(opts.Dialect)
			if err != nil {
				return err
			}
			quals, err := parseQuals(opts.Where)
			if err != nil {
				return err
			}
			query, err := dialect.Select(opts.Columns, opts.Table, quals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), query)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Table, "table", "", "remote table name")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "", "deparse dialect (clickhouse|ansi)")
	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "columns to select, in order")
	cmd.Flags().StringArrayVar(&opts.Where, "where", nil, "condition \"<column> <op> <literal>\" (repeatable)")

	return cmd
}
