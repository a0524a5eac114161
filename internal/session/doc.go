// Package session owns live handles to the remote store and executes query
// text on the adapter's behalf.
//
// Session is an injected capability: the adapter state machine is written
// against the interface so it can be tested with the in-memory Fake, run
// locally against SQLite through SQL, or run for real against the analytical
// store through ClickHouse.
//
// Results come back as a fully materialized ResultSet of raw wire values
// tagged with canonical wire type names (see internal/wire). Sessions do no
// cell conversion - an unsupported column type is carried through and
// surfaces as a TypeError only when the adapter decodes the row. That keeps
// the "prior rows already yielded stay valid" contract: a bad column aborts
// the scan at decode time, not at fetch time.
//
// Timeouts, retries and pool concurrency are deliberately absent here; they
// belong to whatever layer hands out connection strings. Every call runs the
// remote request to completion before returning.
package session
