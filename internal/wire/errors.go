package wire

import (
	"errors"
	"fmt"
)

// TypeError reports a result cell whose wire type has no host mapping.
// It is fatal for the row that carried it and for the remainder of the scan.
type TypeError struct {
	// WireType is the remote type name as reported by the session.
	WireType string

	// Column is the column that carried the value, when known.
	Column string
}

func (e *TypeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("wire type %s (column %s) is not supported", e.WireType, e.Column)
	}
	return fmt.Sprintf("wire type %s is not supported", e.WireType)
}

// IsTypeError reports whether err is (or wraps) a TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// CellError reports an attempt to write a cell variant that has no wire
// counterpart. It is a fatal configuration/runtime error for the statement.
type CellError struct {
	// Kind is the cell variant name, per value.Kind.
	Kind string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell variant %s has no wire representation", e.Kind)
}

// IsCellError reports whether err is (or wraps) a CellError.
func IsCellError(err error) bool {
	var ce *CellError
	return errors.As(err, &ce)
}
