package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	testCases := []struct {
		name string
		cell Cell
		want string
	}{
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"int", Int(-42), "-42"},
		{"float", Float(2.5), "2.5"},
		{"string quoted", String("tom"), `"tom"`},
		{"null", Null{}, "null"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GoString(tc.cell))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "bool", Kind(Bool(true)))
	assert.Equal(t, "int", Kind(Int(1)))
	assert.Equal(t, "float", Kind(Float(1)))
	assert.Equal(t, "string", Kind(String("")))
	assert.Equal(t, "null", Kind(Null{}))
}

func TestRowPreservesOrder(t *testing.T) {
	var row Row
	row.Push("b", Int(2))
	row.Push("a", Int(1))
	row.Push("c", Null{})

	pairs := row.Pairs()
	assert.Equal(t, 3, row.Len())
	assert.Equal(t, "b", pairs[0].Column)
	assert.Equal(t, "a", pairs[1].Column)
	assert.Equal(t, "c", pairs[2].Column)
}

func TestRowCellLookup(t *testing.T) {
	var row Row
	row.Push("name", String("tom"))

	c, ok := row.Cell("name")
	assert.True(t, ok)
	assert.Equal(t, String("tom"), c)

	_, ok = row.Cell("missing")
	assert.False(t, ok)
}

func TestRowPushNilBecomesNull(t *testing.T) {
	var row Row
	row.Push("age", nil)

	c, ok := row.Cell("age")
	assert.True(t, ok)
	assert.Equal(t, Null{}, c)
}
