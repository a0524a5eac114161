package deparse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaylabs/chbridge/internal/value"
)

func TestSelectNoQuals(t *testing.T) {
	// Exact shape contract: no quals means no WHERE clause at all.
	for _, d := range []Dialect{ClickHouse{}, ANSI{}} {
		sql, err := d.Select([]string{"name", "age"}, "people", nil)
		require.NoError(t, err)
		assert.Equal(t, "SELECT name, age FROM people", sql)
	}
}

func TestSelectSingleQual(t *testing.T) {
	quals := []value.Qual{{Column: "age", Operator: ">", Value: value.Int(30)}}
	sql, err := ClickHouse{}.Select([]string{"name", "age"}, "people", quals)
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, age FROM people WHERE age > 30", sql)
}

func TestSelectQualsAreConjunctive(t *testing.T) {
	// n quals render exactly n-1 ANDs.
	for n := 1; n <= 4; n++ {
		quals := make([]value.Qual, n)
		for i := range quals {
			quals[i] = value.Qual{Column: fmt.Sprintf("c%d", i), Operator: "=", Value: value.Int(int64(i))}
		}
		sql, err := ClickHouse{}.Select([]string{"c0"}, "t", quals)
		require.NoError(t, err)
		assert.Equal(t, n-1, strings.Count(sql, " AND "), "quals=%d sql=%s", n, sql)
	}
}

func TestSelectColumnOrderPreserved(t *testing.T) {
	// Result-row decoding is positional; the rendered list must keep the
	// caller's order, not sort it.
	sql, err := ClickHouse{}.Select([]string{"z", "a", "m"}, "t", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT z, a, m FROM t", sql)
}

func TestSelectStringQualEscaped(t *testing.T) {
	quals := []value.Qual{{Column: "name", Operator: "=", Value: value.String("o'brien")}}

	sql, err := ClickHouse{}.Select([]string{"name"}, "people", quals)
	require.NoError(t, err)
	assert.Equal(t, `SELECT name FROM people WHERE name = 'o\'brien'`, sql)

	sql, err = ANSI{}.Select([]string{"name"}, "people", quals)
	require.NoError(t, err)
	assert.Equal(t, `SELECT name FROM people WHERE name = 'o''brien'`, sql)
}

func TestSelectRejectsUnknownOperator(t *testing.T) {
	quals := []value.Qual{{Column: "age", Operator: "> 0; DROP TABLE", Value: value.Int(1)}}
	_, err := ClickHouse{}.Select([]string{"age"}, "people", quals)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not deparsable")
}

func TestUpdateAssignsEveryColumn(t *testing.T) {
	// Absent cells become explicit NULL assignments - update overwrites,
	// unlike insert which omits.
	var row value.Row
	row.Push("name", value.String("carol"))
	row.Push("age", value.Null{})

	sql, err := ClickHouse{}.Update("people", "id", value.Int(42), row)
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE people UPDATE name = 'carol', age = NULL WHERE id = 42", sql)

	sql, err = ANSI{}.Update("people", "id", value.Int(42), row)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE people SET name = 'carol', age = NULL WHERE id = 42", sql)
}

func TestUpdateSkipsRowIDColumn(t *testing.T) {
	var row value.Row
	row.Push("id", value.Int(42))
	row.Push("name", value.String("carol"))

	sql, err := ClickHouse{}.Update("people", "id", value.Int(42), row)
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE people UPDATE name = 'carol' WHERE id = 42", sql)
}

func TestUpdateWithOnlyRowIDFails(t *testing.T) {
	var row value.Row
	row.Push("id", value.Int(42))

	_, err := ClickHouse{}.Update("people", "id", value.Int(42), row)
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	sql, err := ClickHouse{}.Delete("orders", "id", value.Int(42))
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE orders DELETE WHERE id = 42", sql)

	sql, err = ANSI{}.Delete("orders", "id", value.Int(42))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM orders WHERE id = 42", sql)
}

func TestDeleteStringRowID(t *testing.T) {
	sql, err := ANSI{}.Delete("orders", "ref", value.String("a'b"))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM orders WHERE ref = 'a''b'", sql)
}

func TestForName(t *testing.T) {
	d, err := ForName("")
	require.NoError(t, err)
	assert.Equal(t, "clickhouse", d.Name())

	d, err = ForName("ansi")
	require.NoError(t, err)
	assert.Equal(t, "ansi", d.Name())

	_, err = ForName("oracle")
	require.Error(t, err)
}
