// Package sheet reads tabular sources (xlsx, legacy xls, csv) into
// plain string grids and appends generated rows to styled templates.
package sheet

// Highlight flags a generated row for human review. The writer turns
// it into a fill color; it never changes which rows are emitted.
type Highlight int

const (
	HighlightNone  Highlight = iota
	HighlightWarn            // yellow: classification inherited from parent
	HighlightError           // red: no classification found
	HighlightNew             // green: row added by a catalog merge
)

// Row is one output record plus its review flag.
type Row struct {
	Cells     []any
	Highlight Highlight
}

// Document is a fully read tabular source. Indents holds per-cell
// style indentation for formats that carry it (xlsx); it is nil for
// xls and csv.
type Document struct {
	Rows    [][]string
	Indents [][]int
}

// Indent returns the style indent for the cell at row r, column c
// (0-based), or 0 when the source had no indent metadata.
func (d *Document) Indent(r, c int) int {
	if d.Indents == nil || r >= len(d.Indents) || c >= len(d.Indents[r]) {
		return 0
	}
	return d.Indents[r][c]
}

// Cell returns the cell at row r, column c, or "" when the row is
// shorter than c.
func (d *Document) Cell(r, c int) string {
	if r >= len(d.Rows) || c >= len(d.Rows[r]) {
		return ""
	}
	return d.Rows[r][c]
}
