package value

// Pair is one (column, cell) entry of a Row.
type Pair struct {
	Column string
	Cell   Cell
}

// Row is an ordered sequence of column/cell pairs. Order is the column order
// the scan requested, not the remote store's native order. Column names are
// unique within a row; Push does not check this - callers own uniqueness.
type Row struct {
	pairs []Pair
}

// Push appends a column to the row. A nil cell is stored as Null.
func (r *Row) Push(column string, c Cell) {
	if c == nil {
		c = Null{}
	}
	r.pairs = append(r.pairs, Pair{Column: column, Cell: c})
}

// Pairs returns the row's entries in insertion order.
func (r *Row) Pairs() []Pair {
	return r.pairs
}

// Len returns the number of columns in the row.
func (r *Row) Len() int {
	return len(r.pairs)
}

// Cell returns the cell for a column and whether the column is present.
func (r *Row) Cell(column string) (Cell, bool) {
	for _, p := range r.pairs {
		if p.Column == column {
			return p.Cell, true
		}
	}
	return nil, false
}

// Qual is one pushable filter condition: <column> <operator> <literal>.
// A scan's quals are implicitly conjunctive. The planner above this core
// decides which quals are safe to push down; this package just carries them.
type Qual struct {
	Column   string
	Operator string
	Value    Cell
}
