// Package options resolves foreign-table configuration: the remote
// connection string, the target table and the row-identifier column.
//
// Option files are CUE; they are unified with an embedded schema so missing
// or empty required strings fail at load time with a position-carrying
// error, before any remote call is made. Identifiers are NFC-normalized so
// that the deparser always sees one canonical spelling.
package options

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
)

// schema is the contract an option file must satisfy. Required strings must
// be present and non-empty; dialect defaults to clickhouse.
const schema = `
conn_string:  string & !=""
table:        string & !=""
rowid_column: string & !=""
dialect:      *"clickhouse" | "ansi"
driver?:      string & !=""
`

// Options is the resolved configuration for one foreign table reference.
type Options struct {
	// ConnString locates the remote store (DSN form).
	ConnString string `json:"conn_string"`

	// Table is the remote table name. Trusted configuration: interpolated
	// into query text verbatim.
	Table string `json:"table"`

	// RowIDColumn designates the row-identifier column used to address
	// rows in update and delete statements.
	RowIDColumn string `json:"rowid_column"`

	// Dialect selects the deparse dialect ("clickhouse" or "ansi").
	Dialect string `json:"dialect"`

	// Driver is the database/sql driver name for the ansi dialect
	// (e.g. "sqlite3"). Ignored by the clickhouse dialect.
	Driver string `json:"driver,omitempty"`
}

// Load reads and validates a CUE option file.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return Parse(data, path)
}

// Parse validates CUE option bytes against the embedded schema.
func Parse(data []byte, filename string) (Options, error) {
	ctx := cuecontext.New()

	sv := ctx.CompileString(schema)
	if err := sv.Err(); err != nil {
		return Options{}, fmt.Errorf("options schema: %w", err)
	}
	fv := ctx.CompileBytes(data, cue.Filename(filename))
	if err := fv.Err(); err != nil {
		return Options{}, fmt.Errorf("compile options: %w", err)
	}

	merged := sv.Unify(fv)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}

	var o Options
	if err := merged.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	o.normalize()
	return o, nil
}

// Validate checks programmatically constructed options the same way the
// schema checks loaded ones.
func (o *Options) Validate() error {
	if o.ConnString == "" {
		return fmt.Errorf("options: conn_string is required")
	}
	if o.Table == "" {
		return fmt.Errorf("options: table is required")
	}
	if o.RowIDColumn == "" {
		return fmt.Errorf("options: rowid_column is required")
	}
	o.normalize()
	return nil
}

// normalize canonicalizes identifier spellings to NFC. Two option files
// that differ only in Unicode composition resolve to the same binding.
func (o *Options) normalize() {
	o.Table = norm.NFC.String(o.Table)
	o.RowIDColumn = norm.NFC.String(o.RowIDColumn)
}
