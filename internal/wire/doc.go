// Package wire converts single values between the host cell representation
// (internal/value) and the remote store's wire representation, in both
// directions, and renders cells as query-text literals.
//
// The supported wire types are exactly:
//
//	UInt8   -> value.Bool (nonzero is true; the store keeps booleans as UInt8)
//	Int64   -> value.Int
//	Float64 -> value.Float
//	String  -> value.String
//
// Anything else observed while reading a result row is a TypeError: the read
// fails for that row and the caller aborts the remainder of the scan. Writing
// a cell variant with no wire counterpart is a CellError. Neither condition
// is ever coerced or silently dropped.
//
// There is no wire-level null in this mapping. Absence (value.Null) is a
// host-side concept; the adapter decides per statement whether an absent
// cell is omitted (insert) or rendered as an explicit NULL (update).
package wire
