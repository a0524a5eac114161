package session

import "context"

// Fake is an in-memory Session for tests and harness scenarios. It records
// every piece of query text the adapter issues and answers queries from a
// scripted list of result sets, in order.
//
// Not safe for concurrent use; the protocol it fakes is single-threaded.
type Fake struct {
	// Script holds the result sets returned by successive Query calls.
	// When exhausted, Query returns an empty result set.
	Script []*ResultSet

	// QueryErr, ExecErr and InsertErr, when set, fail the corresponding
	// call (after recording it).
	QueryErr  error
	ExecErr   error
	InsertErr error

	// Queries, Execs and Inserts record issued operations in order.
	Queries []string
	Execs   []string
	Inserts []RecordedInsert

	Closed bool

	next int
}

// RecordedInsert is one InsertBatch call observed by the Fake.
type RecordedInsert struct {
	Table string
	Rows  []InsertRow
}

func (f *Fake) Query(_ context.Context, query string) (*ResultSet, error) {
	f.Queries = append(f.Queries, query)
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	if f.next >= len(f.Script) {
		return &ResultSet{}, nil
	}
	rs := f.Script[f.next]
	f.next++
	return rs, nil
}

func (f *Fake) Exec(_ context.Context, statement string) error {
	f.Execs = append(f.Execs, statement)
	return f.ExecErr
}

func (f *Fake) InsertBatch(_ context.Context, table string, rows []InsertRow) error {
	f.Inserts = append(f.Inserts, RecordedInsert{Table: table, Rows: rows})
	return f.InsertErr
}

func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
