package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quaylabs/chbridge/internal/deparse"
	"github.com/quaylabs/chbridge/internal/options"
	"github.com/quaylabs/chbridge/internal/session"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	// OptionsPath points at the foreign-table options file (CUE).
	OptionsPath string
}

// NewRootCommand creates the root command for the chbridge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "chbridge",
		Short: "chbridge - foreign table adapter for an analytical store",
		Long: `chbridge bridges a relational query engine's foreign-table protocol to a
remote analytical store: it deparses pushed-down predicates into the store's
query dialect, scans materialized results, and issues row mutations.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.OptionsPath, "options", "o", "", "foreign table options file (CUE)")

	cmd.AddCommand(NewDeparseCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewInsertCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// loadOptions reads the options file named by the global flag.
func loadOptions(opts *RootOptions) (options.Options, error) {
	return options.Load(opts.OptionsPath)
}

// connect acquires a session and dialect per the resolved options.
func connect(ctx context.Context, o options.Options) (session.Session, deparse.Dialect, error) {
	dialect, err := deparse.ForName(o.Dialect)
	if err != nil {
		return nil, nil, err
	}
	switch dialect.Name() {
	case "ansi":
		driver := o.Driver
		if driver == "" {
			driver = "sqlite3"
		}
		sess, err := session.OpenSQL(ctx, driver, o.ConnString)
		if err != nil {
			return nil, nil, err
		}
		return sess, dialect, nil
	default:
		sess, err := session.ConnectClickHouse(ctx, o.ConnString)
		if err != nil {
			return nil, nil, err
		}
		return sess, dialect, nil
	}
}
