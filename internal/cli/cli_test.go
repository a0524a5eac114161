package cli

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaylabs/chbridge/internal/value"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDeparseCommand(t *testing.T) {
	out, err := executeCommand(t, "deparse",
		"--table", "people",
		"--columns", "name,age",
		"--where", "age > 30")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, age FROM people WHERE age > 30\n", out)
}

func TestDeparseCommandNoQuals(t *testing.T) {
	out, err := executeCommand(t, "deparse",
		"--table", "people",
		"--columns", "name,age")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, age FROM people\n", out)
}

func TestDeparseCommandStringQual(t *testing.T) {
	out, err := executeCommand(t, "deparse",
		"--table", "people",
		"--columns", "name",
		"--where", "name = 'o'brien'")
	require.NoError(t, err)
	assert.Equal(t, `SELECT name FROM people WHERE name = 'o\'brien'`+"\n", out)
}

func TestDeparseCommandRequiresFlags(t *testing.T) {
	_, err := executeCommand(t, "deparse", "--columns", "a")
	require.Error(t, err)

	_, err = executeCommand(t, "deparse", "--table", "t")
	require.Error(t, err)
}

func TestParseLiteral(t *testing.T) {
	testCases := []struct {
		in   string
		want value.Cell
	}{
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{"2.5", value.Float(2.5)},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"null", value.Null{}},
		{"'42'", value.String("42")},
		{"bob", value.String("bob")},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLiteral(tc.in))
		})
	}
}

func TestParseQual(t *testing.T) {
	q, err := parseQual("age >= 30")
	require.NoError(t, err)
	assert.Equal(t, value.Qual{Column: "age", Operator: ">=", Value: value.Int(30)}, q)

	_, err = parseQual("age>30")
	require.Error(t, err)
}

func setupLocalTable(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	require.NoError(t, err)
}

// TestLocalRoundTrip drives insert, scan, update and delete end to end
// against a sqlite-backed store through the ansi dialect.
func TestLocalRoundTrip(t *testing.T) {
	dir := t.TempDir()

	optionsPath := filepath.Join(dir, "people.cue")
	require.NoError(t, os.WriteFile(optionsPath, []byte(fmt.Sprintf(`
conn_string:  "file:%s"
table:        "people"
rowid_column: "id"
dialect:      "ansi"
driver:       "sqlite3"
`, filepath.Join(dir, "people.db"))), 0o600))

	// The adapter assumes the remote table exists; create it out of band.
	setupLocalTable(t, filepath.Join(dir, "people.db"))

	rowsPath := filepath.Join(dir, "rows.yaml")
	require.NoError(t, os.WriteFile(rowsPath, []byte(`
- {id: 1, name: tom, age: 32}
- {id: 2, name: jerry, age: 41}
- {id: 3, name: ann}
`), 0o600))

	out, err := executeCommand(t, "insert", "-o", optionsPath, rowsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted 3 rows")

	out, err = executeCommand(t, "scan", "-o", optionsPath,
		"--columns", "name,age",
		"--where", "age > 30")
	require.NoError(t, err)
	assert.Contains(t, out, `name="tom"`)
	assert.Contains(t, out, `name="jerry"`)
	assert.NotContains(t, out, `name="ann"`)

	updatePath := filepath.Join(dir, "update.yaml")
	require.NoError(t, os.WriteFile(updatePath, []byte(`
- {name: thomas, age: null}
`), 0o600))
	out, err = executeCommand(t, "update", "-o", optionsPath, "--rowid", "1", updatePath)
	require.NoError(t, err)
	assert.Contains(t, out, "updated 1 row")

	out, err = executeCommand(t, "scan", "-o", optionsPath, "--columns", "name,age")
	require.NoError(t, err)
	assert.Contains(t, out, `name="thomas"`)
	// The update set age to NULL explicitly.
	assert.Contains(t, out, "name=\"thomas\"\tage=null")

	out, err = executeCommand(t, "delete", "-o", optionsPath, "--rowid", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 1 row")

	out, err = executeCommand(t, "scan", "-o", optionsPath, "--columns", "name")
	require.NoError(t, err)
	assert.NotContains(t, out, "jerry")
}
