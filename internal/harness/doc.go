// Package harness runs protocol conformance scenarios against the adapter.
//
// A scenario is a YAML file: a table binding, scripted result sets for the
// fake session to answer scans with, and a list of protocol steps (scan,
// insert, update, delete). The runner drives a real adapter over a
// session.Fake and records a line-oriented trace of everything observable:
// deparsed query text, yielded rows, issued statements, errors.
//
// Traces are compared against golden files in testdata. To regenerate:
//
//	go test ./internal/harness -update
//
// The golden trace is the source of truth for the query-text contract; no
// live remote store is involved.
package harness
