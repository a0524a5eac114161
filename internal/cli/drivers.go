package cli

// The binary decides which database/sql drivers are linked in. sqlite3 is
// the default driver for the ansi dialect's local mode.
import _ "github.com/mattn/go-sqlite3"
