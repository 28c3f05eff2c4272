package odfcell

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const tagTable = "table:table"

// Table is a table:table element, one sheet of a spreadsheet.
type Table struct {
	Container[*Row]
	name string
}

// NewTable creates an empty table. The name must not be blank.
func NewTable(name string) (*Table, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ConfigurationError{Field: "name", Value: name, Err: ErrInvalidTableName}
	}
	return &Table{name: name}, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// AddRow appends a new row and returns it.
func (t *Table) AddRow(opts ...RowOption) *Row {
	r := NewRow(opts...)
	t.AppendChild(r)
	return r
}

// Rows returns the table rows.
func (t *Table) Rows() []*Row { return t.Children() }

// Columns returns the column count of the widest row.
func (t *Table) Columns() int {
	n := 0
	for _, r := range t.children {
		n = max(n, r.Columns())
	}
	return n
}

// EncodeXML implements Element.
func (t *Table) EncodeXML(enc *xml.Encoder) error {
	m := markup{enc}
	if err := m.openTag(tagTable, Attributes{{"table:name", t.name}}); err != nil {
		return err
	}
	for i, r := range t.children {
		if err := r.EncodeXML(enc); err != nil {
			return fmt.Errorf("table %q row %d: %w", t.name, i+1, err)
		}
	}
	return m.closeTag(tagTable)
}

// WriteXML writes the table markup to w.
func (t *Table) WriteXML(w io.Writer) error {
	return writeElement(w, t)
}

// XML returns the table markup.
func (t *Table) XML() string {
	return elementString(t)
}
