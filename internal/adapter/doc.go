// Package adapter implements the scan/modify state machine a relational
// query engine drives a foreign table through.
//
// The engine's call sequence is fixed and single-threaded per instance:
//
//	PlanSize -> BeginScan -> NextRow* -> EndScan        (reads)
//	BeginModify -> {InsertRow|UpdateRow|DeleteRow}* -> EndModify  (writes)
//
// PlanSize deparses the pushed-down quals, executes the query eagerly and
// materializes the whole result; the scan then iterates a local cursor.
// Eager materialization trades memory for never holding a live remote
// cursor open across the scan - the store favors large columnar transfers
// over server-side cursoring.
//
// The table binding (table name, row-identifier column) is re-resolved from
// options at the start of every scan or modify and never leaks across
// statements. Each statement gets a UUIDv7 token used to correlate its log
// lines.
//
// Failure policy: every remote error is fatal for its statement and is
// returned to the caller; nothing is retried and nothing is swallowed. Rows
// already yielded before a failure stay valid; no further rows follow.
package adapter
