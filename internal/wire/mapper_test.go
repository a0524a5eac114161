package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaylabs/chbridge/internal/value"
)

func TestRoundTrip(t *testing.T) {
	// ToCell(WireType(c), ToWire(c)) must equal c for every supported variant.
	testCases := []struct {
		name string
		cell value.Cell
	}{
		{"bool true", value.Bool(true)},
		{"bool false", value.Bool(false)},
		{"int", value.Int(-9007199254740993)},
		{"float", value.Float(2.5)},
		{"string", value.String("héllo")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wt, err := WireType(tc.cell)
			require.NoError(t, err)
			wv, err := ToWire(tc.cell)
			require.NoError(t, err)
			got, err := ToCell(wt, wv)
			require.NoError(t, err)
			assert.Equal(t, tc.cell, got)
		})
	}
}

func TestToCellBooleanConvention(t *testing.T) {
	// The store keeps booleans as UInt8: nonzero is true.
	c, err := ToCell(TypeUInt8, uint8(1))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), c)

	c, err = ToCell(TypeUInt8, uint8(0))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), c)

	c, err = ToCell(TypeUInt8, uint8(7))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), c)

	// database/sql sessions hand back int64 for the same column.
	c, err = ToCell(TypeUInt8, int64(1))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), c)
}

func TestToCellUnsupportedType(t *testing.T) {
	_, err := ToCell("DateTime", "2024-01-01")
	require.Error(t, err)
	assert.True(t, IsTypeError(err))
	assert.Contains(t, err.Error(), "DateTime")
}

func TestToCellUnexpectedValue(t *testing.T) {
	// Supported wire type, wrong Go type: an error, but not a TypeError.
	_, err := ToCell(TypeInt64, "not a number")
	require.Error(t, err)
	assert.False(t, IsTypeError(err))
}

func TestToWireNullIsCellError(t *testing.T) {
	_, err := ToWire(value.Null{})
	require.Error(t, err)
	assert.True(t, IsCellError(err))
	assert.Contains(t, err.Error(), "null")
}

func TestLiteral(t *testing.T) {
	testCases := []struct {
		name string
		cell value.Cell
		want string
	}{
		{"int", value.Int(42), "42"},
		{"negative int", value.Int(-1), "-1"},
		{"float", value.Float(2.5), "2.5"},
		{"bool true", value.Bool(true), "true"},
		{"bool false", value.Bool(false), "false"},
		{"string", value.String("tom"), "'tom'"},
		{"empty string", value.String(""), "''"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Literal(tc.cell)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLiteralEscaping(t *testing.T) {
	// Literal values come from query parameters; a quote must never be able
	// to terminate the literal early.
	got, err := Literal(value.String("o'brien"))
	require.NoError(t, err)
	assert.Equal(t, `'o\'brien'`, got)

	got, err = Literal(value.String(`back\slash`))
	require.NoError(t, err)
	assert.Equal(t, `'back\\slash'`, got)

	got, err = Literal(value.String("'; DROP TABLE people; --"))
	require.NoError(t, err)
	assert.Equal(t, `'\'; DROP TABLE people; --'`, got)
}

func TestLiteralNullIsCellError(t *testing.T) {
	_, err := Literal(value.Null{})
	require.Error(t, err)
	assert.True(t, IsCellError(err))
}

func TestTypeErrorColumnInMessage(t *testing.T) {
	err := &TypeError{WireType: "Date", Column: "stamp"}
	assert.Equal(t, "wire type Date (column stamp) is not supported", err.Error())
}
