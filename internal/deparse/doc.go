// Package deparse renders scan and modify operations as remote query text.
//
// The job is purely structural: a column list, a flat AND-joined WHERE
// clause, and literal formatting via the wire mapper. Pushability decisions
// belong to the planner above this core; every qual handed in is rendered.
//
// Dialect is the substitution seam. ClickHouse is the primary dialect
// (mutations are ALTER TABLE ... UPDATE / DELETE); ANSI covers database/sql
// stores driven through the generic session. Both produce identical SELECT
// shapes, so scans are dialect-independent.
//
// Trust boundary: table and column identifiers come from trusted
// configuration and are interpolated verbatim. Literal values come from
// query parameters and are always escaped by the wire mapper. Operators are
// checked against a whitelist.
package deparse
