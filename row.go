package odfcell

import "encoding/xml"

const tagRow = "table:table-row"

// RowOption configures a Row.
type RowOption func(*Row)

// WithRowStyle sets the table:style-name of the row element.
func WithRowStyle(name string) RowOption {
	return func(r *Row) { r.style = name }
}

// WithDefaultCellStyle sets the style given to appended cells that have none.
func WithDefaultCellStyle(name string) RowOption {
	return func(r *Row) { r.cellStyle = name }
}

// Row is a table:table-row owning its cells in column order.
type Row struct {
	Container[*Cell]
	style     string
	cellStyle string
}

// NewRow creates an empty row.
func NewRow(opts ...RowOption) *Row {
	r := &Row{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the row style name.
func (r *Row) Style() string { return r.style }

// Append adds existing cells to the row, applying the default cell style.
func (r *Row) Append(cells ...*Cell) {
	for _, c := range cells {
		if r.cellStyle != "" && c.Style() == "" {
			c.SetStyle(r.cellStyle)
		}
		r.AppendChild(c)
	}
}

// AddCell creates a cell from v and appends it.
func (r *Row) AddCell(v any, opts ...Option) (*Cell, error) {
	c, err := New(v, opts...)
	if err != nil {
		return nil, err
	}
	r.Append(c)
	return c, nil
}

// Cells returns the row's cells.
func (r *Row) Cells() []*Cell { return r.Children() }

// Columns returns the number of table columns covered by the row.
func (r *Row) Columns() int {
	n := 0
	for _, c := range r.children {
		n += c.Span()
	}
	return n
}

// EncodeXML implements Element.
func (r *Row) EncodeXML(enc *xml.Encoder) error {
	m := markup{enc}
	var attrs Attributes
	if r.style != "" {
		attrs = Attributes{{AttrStyleName, r.style}}
	}
	if err := m.openTag(tagRow, attrs); err != nil {
		return err
	}
	if err := r.EncodeChildren(enc); err != nil {
		return err
	}
	return m.closeTag(tagRow)
}
