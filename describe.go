package odfcell

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Describe returns a human-readable tree of a table's rows and cells, with
// spreadsheet coordinates, types, and the options that shape each cell.
// Useful for debugging generated tables.
func Describe(t *Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table %q (%d rows, %d columns)\n", t.Name(), t.Len(), t.Columns())

	for i, row := range t.Rows() {
		fmt.Fprintf(&b, "  row %d", i+1)
		if row.Style() != "" {
			fmt.Fprintf(&b, " style=%s", row.Style())
		}
		b.WriteByte('\n')

		col := 1
		for _, c := range row.Cells() {
			describeCell(&b, c, col, i+1)
			col += c.Span()
		}
	}
	return b.String()
}

func describeCell(b *strings.Builder, c *Cell, col, row int) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		name = fmt.Sprintf("R%dC%d", row, col)
	}

	typ := c.Type().String()
	if typ == "" {
		typ = "empty"
	}
	fmt.Fprintf(b, "    %s %s", name, typ)
	if c.Value() != "" {
		fmt.Fprintf(b, " %q", c.Value())
	}
	if c.ContainsURL() {
		fmt.Fprintf(b, " -> %s", c.URL())
	}
	if c.Formula() != "" {
		fmt.Fprintf(b, " formula=%s", c.Formula())
		if c.MatrixFormula() {
			b.WriteString(" (matrix)")
		}
	}
	if c.Style() != "" {
		fmt.Fprintf(b, " style=%s", c.Style())
	}
	if c.Span() > 1 {
		fmt.Fprintf(b, " span=%d", c.Span())
	}
	b.WriteByte('\n')
}
