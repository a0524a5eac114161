package value

import (
	"fmt"
	"strconv"
)

// Cell is a sealed interface representing one column's content in the host
// type system. Only Bool, Int, Float, String and Null implement it.
type Cell interface {
	cell() // Sealed - only types in this package implement it
}

// Bool represents a boolean cell.
type Bool bool

func (Bool) cell() {}

// Int represents a 64-bit signed integer cell.
type Int int64

func (Int) cell() {}

// Float represents a 64-bit float cell.
type Float float64

func (Float) cell() {}

// String represents a text cell.
type String string

func (String) cell() {}

// Null represents an absent value. It is an explicit variant so that every
// Row entry carries a non-nil Cell; absence is data, not an error.
type Null struct{}

func (Null) cell() {}

// GoString renders a Cell for diagnostics and error messages. It is NOT the
// query-literal form; literal rendering with escaping lives in the wire
// package.
func GoString(c Cell) string {
	switch v := c.(type) {
	case Bool:
		return strconv.FormatBool(bool(v))
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return strconv.Quote(string(v))
	case Null:
		return "null"
	default:
		return fmt.Sprintf("<unknown cell %T>", c)
	}
}

// Kind returns a stable name for a Cell's variant, used in error messages.
func Kind(c Cell) string {
	switch c.(type) {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Null:
		return "null"
	default:
		return fmt.Sprintf("%T", c)
	}
}
