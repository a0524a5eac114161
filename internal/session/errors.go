package session

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes session errors.
type ErrorCode string

const (
	// ErrCodeConnection indicates session acquisition failed.
	ErrCodeConnection ErrorCode = "CONNECTION_FAILED"

	// ErrCodeQuery indicates a query or statement failed remotely.
	ErrCodeQuery ErrorCode = "QUERY_FAILED"
)

// Error is a session failure with the remote-provided cause attached.
type Error struct {
	Code ErrorCode

	// Op names the failing operation (connect, query, exec, insert).
	Op string

	// Err is the underlying driver error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsConnectionError reports whether err is a session-acquisition failure.
func IsConnectionError(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == ErrCodeConnection
}

// IsQueryError reports whether err is a remote query/statement failure.
func IsQueryError(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == ErrCodeQuery
}

func connectionError(op string, err error) *Error {
	return &Error{Code: ErrCodeConnection, Op: op, Err: err}
}

func queryError(op string, err error) *Error {
	return &Error{Code: ErrCodeQuery, Op: op, Err: err}
}
