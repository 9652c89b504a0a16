package tabular

import "strings"

// Table is a fully materialized tabular source: one header row plus data rows.
// Cells are raw strings; typed coercion happens in the consumers.
type Table struct {
	// Name identifies the source (file name or logical label) for error messages.
	Name string

	// Headers are the literal column header strings, trimmed.
	Headers []string

	// Rows holds the data cells. Short rows are allowed; Cell returns ""
	// for columns past the end of a row.
	Rows [][]string
}

// Cell returns the trimmed cell value at (row, col), or "" when the row is
// shorter than col.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Column returns all values of one column, row order preserved.
func (t *Table) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
