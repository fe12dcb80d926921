package types

import "strconv"

// CellKind identifies the value stored in a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a single table value: empty, text, or a number. The kind is fixed
// when the table is constructed and never changes afterwards.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell returns a text cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell holding n.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the raw display form of the cell: the text as-is, the
// shortest exact decimal form for numbers, and "" for empty cells.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// ColumnKind is the inferred type of a whole column.
type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnNumber
)

// Column is a named, ordered sequence of cells sharing one inferred kind.
type Column struct {
	Name  string
	Kind  ColumnKind
	Cells []Cell
}

// Table is an ordered sequence of equally long named columns. Column names
// are unique within a table; row order is significant and preserved by all
// operations on it.
type Table struct {
	Columns []Column
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column, or false if the table has no such column.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// AppendColumn adds a column after the existing ones.
func (t *Table) AppendColumn(col Column) {
	t.Columns = append(t.Columns, col)
}

// PrependColumn adds a column before the existing ones.
func (t *Table) PrependColumn(col Column) {
	t.Columns = append([]Column{col}, t.Columns...)
}

// Clone returns a deep copy of the table. Callers that mutate a table while
// other goroutines read it must work on their own clone.
func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, col := range t.Columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		out.Columns[i] = Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	return out
}
