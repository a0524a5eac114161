// Package value provides the host-side data model for chbridge.
//
// This package contains type definitions only. All other internal packages
// import value; value imports nothing internal. This keeps the data model
// the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Cell is a sealed interface: exactly Bool, Int, Float, String and Null
//     implement it. Backends can type-switch exhaustively.
//   - Null is an explicit variant, not a nil Cell. Absence of a value is
//     data, distinct from an error.
//   - Row preserves the column order it was built with. Result decoding and
//     query deparsing both depend on that order.
package value
