// Package table keeps the rows of a highscore table together with one
// descriptor per column and reorders the rows by any column on request.
//
// Cells are stored as strings. A sort reads the active column as its
// declared type and, if any cell does not parse, orders the column as plain
// strings instead and reports why.
package table

import (
	"github.com/pkg/errors"

	"highscore/src/sort"
	"highscore/src/utils"
)

var logger = utils.GetLogger("highscore")

// Row is one table entry, one cell per column.
type Row []string

// Column describes one column. Index is fixed when the table is created.
// At most one column of a table is Active; Ascending is the direction of
// that column's last sort.
type Column struct {
	Index     int
	Title     string
	Type      StatType
	Visible   bool
	Active    bool
	Ascending bool
}

// Arrow is the direction marker shown next to the active column's title.
func (c Column) Arrow() string {
	switch {
	case !c.Active:
		return ""
	case c.Ascending:
		return "▲"
	}
	return "▼"
}

// Result is what a SortByColumn call hands back for display.
type Result struct {
	Column    int
	Ascending bool
	Rows      []Row
	Outcome   Outcome
}

// Table is not safe for concurrent use; callers sharing one must serialize
// SortByColumn.
type Table struct {
	columns   []*Column
	rows      []Row
	algorithm sort.Algorithm
}

type Option func(*Table)

// WithAlgorithm selects the algorithm rows are ordered with. The default is
// merge sort.
func WithAlgorithm(alg sort.Algorithm) Option {
	return func(t *Table) { t.algorithm = alg }
}

// New builds a table from column declarations and rows. Only Title, Type and
// Visible of each declaration are used. rows is kept, not copied, and is
// reordered in place by SortByColumn.
func New(columns []Column, rows []Row, opts ...Option) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	t := &Table{columns: make([]*Column, len(columns)), algorithm: sort.Merge}
	for i, c := range columns {
		if !c.Type.Valid() {
			return nil, errors.Wrapf(ErrUnsupportedType, "column %d: %d", i, int(c.Type))
		}
		t.columns[i] = &Column{Index: i, Title: c.Title, Type: c.Type, Visible: c.Visible}
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.checkArity(rows); err != nil {
		return nil, err
	}
	t.rows = rows
	return t, nil
}

func (t *Table) checkArity(rows []Row) error {
	for i, r := range rows {
		if len(r) != len(t.columns) {
			return errors.Wrapf(ErrArity, "row %d has %d cells, want %d", i, len(r), len(t.columns))
		}
	}
	return nil
}

func (t *Table) Arity() int { return len(t.columns) }

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Algorithm() sort.Algorithm { return t.algorithm }

// Rows returns the rows in their current order.
func (t *Table) Rows() []Row { return t.rows }

// Append adds rows at the end. Nothing is added if any row has the wrong
// number of cells.
func (t *Table) Append(rows ...Row) error {
	if err := t.checkArity(rows); err != nil {
		return err
	}
	t.rows = append(t.rows, rows...)
	return nil
}

func (t *Table) column(i int) (*Column, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, errors.Wrapf(ErrColumnOutOfRange, "column %d of %d", i, len(t.columns))
	}
	return t.columns[i], nil
}

// Column returns a copy of the i-th column descriptor.
func (t *Table) Column(i int) (Column, error) {
	c, err := t.column(i)
	if err != nil {
		return Column{}, err
	}
	return *c, nil
}

// Columns returns copies of all column descriptors in index order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	for i, c := range t.columns {
		out[i] = *c
	}
	return out
}

func (t *Table) VisibleColumns() []Column {
	var out []Column
	for _, c := range t.columns {
		if c.Visible {
			out = append(out, *c)
		}
	}
	return out
}

func (t *Table) SetVisible(i int, visible bool) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.Visible = visible
	return nil
}

// Active returns the column currently governing the row order, if any.
func (t *Table) Active() (Column, bool) {
	for _, c := range t.columns {
		if c.Active {
			return *c, true
		}
	}
	return Column{}, false
}

// Cells returns the i-th cell of every row.
func (t *Table) Cells(i int) ([]string, error) {
	if _, err := t.column(i); err != nil {
		return nil, err
	}
	cells := make([]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = row[i]
	}
	return cells, nil
}

type entry struct {
	key Key
	row Row
}

func compareEntries(a, b entry) int { return a.key.Compare(b.key) }

// SortByColumn orders the rows by column i. The first sort on a column is
// ascending and each further sort on the same column flips the direction;
// sorting another column in between starts that column over at ascending.
// Afterwards column i is the only active column.
func (t *Table) SortByColumn(i int) (Result, error) {
	col, err := t.column(i)
	if err != nil {
		return Result{}, err
	}
	ascending := !col.Active || !col.Ascending

	cells, _ := t.Cells(i)
	c, err := Coerce(cells, col.Type)
	if err != nil {
		return Result{}, err
	}
	keys := c.Keys
	if !c.Outcome.OK() {
		logger.Warnf("column %d (%s): %s", i, col.Title, c.Outcome)
		lexical, _ := Coerce(cells, String)
		keys = lexical.Keys
	}

	entries := make([]entry, len(t.rows))
	for r, row := range t.rows {
		entries[r] = entry{key: keys[r], row: row}
	}
	if err := sort.Slice(t.algorithm, entries, compareEntries, ascending); err != nil {
		return Result{}, err
	}
	for r, e := range entries {
		t.rows[r] = e.row
	}

	for _, other := range t.columns {
		other.Active = false
	}
	col.Active = true
	col.Ascending = ascending

	sortsTotal.WithLabelValues(col.Type.String(), c.Outcome.Reason.label()).Inc()
	logger.Debugf("sorted %d rows by column %d (%s) ascending=%t with %s sort",
		len(t.rows), i, col.Title, ascending, t.algorithm)

	return Result{Column: i, Ascending: ascending, Rows: t.rows, Outcome: c.Outcome}, nil
}
