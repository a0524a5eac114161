package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quaylabs/chbridge/internal/value"
)

// Canonical wire type names. Sessions normalize their column metadata to
// these names; the mapper accepts no others.
const (
	TypeUInt8   = "UInt8"
	TypeInt64   = "Int64"
	TypeFloat64 = "Float64"
	TypeString  = "String"
)

// ToCell converts one wire value to a host cell.
//
// The concrete Go type of v varies by session implementation (the native
// driver scans UInt8 into uint8, database/sql hands back int64), so each
// wire type accepts the handful of Go types sessions produce for it.
// A wire type outside the supported set is a TypeError.
func ToCell(wireType string, v any) (value.Cell, error) {
	switch wireType {
	case TypeUInt8:
		switch n := v.(type) {
		case uint8:
			return value.Bool(n != 0), nil
		case int64:
			return value.Bool(n != 0), nil
		case bool:
			return value.Bool(n), nil
		}
	case TypeInt64:
		switch n := v.(type) {
		case int64:
			return value.Int(n), nil
		case int:
			return value.Int(n), nil
		}
	case TypeFloat64:
		if f, ok := v.(float64); ok {
			return value.Float(f), nil
		}
	case TypeString:
		switch s := v.(type) {
		case string:
			return value.String(s), nil
		case []byte:
			return value.String(s), nil
		}
	default:
		return nil, &TypeError{WireType: wireType}
	}
	return nil, fmt.Errorf("wire type %s: unexpected value of type %T", wireType, v)
}

// ToWire converts a host cell to its wire value. Null has no wire
// counterpart: the adapter must resolve absence (omit or explicit NULL)
// before reaching the wire, so Null here is a CellError like any other
// unmappable variant.
func ToWire(c value.Cell) (any, error) {
	switch v := c.(type) {
	case value.Bool:
		return bool(v), nil
	case value.Int:
		return int64(v), nil
	case value.Float:
		return float64(v), nil
	case value.String:
		return string(v), nil
	default:
		return nil, &CellError{Kind: value.Kind(c)}
	}
}

// WireType returns the canonical wire type name a cell round-trips through.
func WireType(c value.Cell) (string, error) {
	switch c.(type) {
	case value.Bool:
		return TypeUInt8, nil
	case value.Int:
		return TypeInt64, nil
	case value.Float:
		return TypeFloat64, nil
	case value.String:
		return TypeString, nil
	default:
		return "", &CellError{Kind: value.Kind(c)}
	}
}

// Literal renders a cell as a query-text literal for the remote dialect.
// Numerics are unquoted; strings are single-quoted with backslash escaping.
// Escaping is a correctness property, not cosmetics: literal values come
// from query parameters and must not reach the remote store unescaped.
func Literal(c value.Cell) (string, error) {
	switch v := c.(type) {
	case value.Bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case value.Int:
		return strconv.FormatInt(int64(v), 10), nil
	case value.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case value.String:
		return quoteString(string(v)), nil
	default:
		return "", &CellError{Kind: value.Kind(c)}
	}
}

// quoteString single-quotes s, escaping backslash and single quote with a
// leading backslash (the remote store's escape convention).
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '\'':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('\'')
	return b.String()
}
