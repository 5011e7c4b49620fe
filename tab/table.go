// Package tab provides a small column-addressed table for delimited and
// spreadsheet data. Cells are kept as raw strings so that values pass
// through unchanged unless a caller explicitly derives new columns.
package tab

import (
	"fmt"
)

// Table is an immutable header-plus-rows view of tabular data. All mutating
// operations return a new Table and leave the receiver untouched.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// New validates that the header has no duplicate names and that every row has
// exactly one cell per column.
func New(header []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i+1, len(row), len(header))
		}
	}

	return &Table{header: header, index: index, rows: rows}, nil
}

// Header returns a copy of the column names in order.
func (t *Table) Header() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)

	return out
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) NumCols() int {
	return len(t.header)
}

func (t *Table) HasColumn(name string) bool {
	_, exists := t.index[name]

	return exists
}

// MissingColumns returns the requested names that are not present in the
// table, preserving the requested order.
func (t *Table) MissingColumns(requested []string) []string {
	var missing []string
	for _, name := range requested {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}

	return missing
}

// ColumnIndex resolves a column name to its position, for use with CellAt in
// loops that touch every row.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, exists := t.index[name]

	return i, exists
}

// CellAt returns the raw cell at the given row and column position.
func (t *Table) CellAt(row, col int) string {
	return t.rows[row][col]
}

// Cell returns the raw cell at the given row under the named column. The
// second return is false if the column does not exist.
func (t *Table) Cell(row int, column string) (string, bool) {
	i, exists := t.index[column]
	if !exists {
		return "", false
	}

	return t.rows[row][i], true
}

// Column returns a copy of all values under the named column.
func (t *Table) Column(name string) ([]string, bool) {
	i, exists := t.index[name]
	if !exists {
		return nil, false
	}

	out := make([]string, len(t.rows))
	for row := range t.rows {
		out[row] = t.rows[row][i]
	}

	return out, true
}

// Rename maps old column names to new ones. Columns absent from the mapping
// keep their names, and mapping entries whose old name is absent from the
// table are ignored. Renaming fails if it would produce duplicate columns.
func (t *Table) Rename(oldToNew map[string]string) (*Table, error) {
	header := make([]string, len(t.header))
	for i, name := range t.header {
		if updated, exists := oldToNew[name]; exists {
			header[i] = updated
		} else {
			header[i] = name
		}
	}

	return New(header, t.rows)
}

// WithColumn returns a table with the named column set to the given values.
// An existing column of the same name is replaced in place; otherwise the
// column is appended on the right.
func (t *Table) WithColumn(name string, values []string) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.rows))
	}

	if i, exists := t.index[name]; exists {
		rows := make([][]string, len(t.rows))
		for row := range t.rows {
			rows[row] = append([]string{}, t.rows[row]...)
			rows[row][i] = values[row]
		}

		return New(t.header, rows)
	}

	header := append(t.Header(), name)
	rows := make([][]string, len(t.rows))
	for row := range t.rows {
		rows[row] = make([]string, 0, len(header))
		rows[row] = append(rows[row], t.rows[row]...)
		rows[row] = append(rows[row], values[row])
	}

	return New(header, rows)
}

// Filter returns a table holding only the rows for which keep is true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([][]string, 0, len(t.rows))
	for row := range t.rows {
		if keep(row) {
			rows = append(rows, t.rows[row])
		}
	}

	return &Table{header: t.header, index: t.index, rows: rows}
}

// Select returns a table restricted to the named columns, in the given order.
func (t *Table) Select(columns []string) (*Table, error) {
	positions := make([]int, len(columns))
	for i, name := range columns {
		pos, exists := t.index[name]
		if !exists {
			return nil, fmt.Errorf("select: unknown column %q", name)
		}
		positions[i] = pos
	}

	rows := make([][]string, len(t.rows))
	for row := range t.rows {
		rows[row] = make([]string, len(columns))
		for i, pos := range positions {
			rows[row][i] = t.rows[row][pos]
		}
	}

	header := make([]string, len(columns))
	copy(header, columns)

	return New(header, rows)
}
