package table

import (
	"fmt"
)

// Table is an ordered collection of named, equal-length columns.
// A Table is immutable; every derived table shares column storage with its parent.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New creates a table from columns, enforcing unique names and equal lengths
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("column %d is nil", i)
		}
		if _, exists := t.index[col.Name()]; exists {
			return nil, fmt.Errorf("column %q already exists", col.Name())
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name(), col.Len(), t.rows)
		}
		t.index[col.Name()] = i
		t.columns = append(t.columns, col)
	}

	return t, nil
}

// NumRows returns the row count shared by every column
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns
func (t *Table) NumColumns() int { return len(t.columns) }

// Columns returns the columns in order. The slice is a copy.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Select returns a table holding the named columns in the requested order.
// All rows are kept.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
		cols = append(cols, col)
	}

	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	// a selection of zero columns still describes the parent's rows
	out.rows = t.rows
	return out, nil
}

// Filter returns a table holding the columns for which keep returns true,
// in their original order.
func (t *Table) Filter(keep func(Column) bool) *Table {
	out := &Table{index: make(map[string]int), rows: t.rows}
	for _, col := range t.columns {
		if keep(col) {
			out.index[col.Name()] = len(out.columns)
			out.columns = append(out.columns, col)
		}
	}
	return out
}

// Head returns a table with at most the first n rows
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n >= t.rows {
		return t
	}

	out := &Table{
		columns: make([]Column, len(t.columns)),
		index:   make(map[string]int, len(t.columns)),
		rows:    n,
	}
	for i, col := range t.columns {
		out.columns[i] = col.slice(0, n)
		out.index[col.Name()] = i
	}
	return out
}

// Row returns the typed values of row i, nil for missing cells
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.columns))
	for j, col := range t.columns {
		row[j] = col.Value(i)
	}
	return row
}
