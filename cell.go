package odfcell

import (
	"encoding/xml"
	"io"
)

const tagCell = "table:table-cell"

// Cell is a single table:table-cell of an ODF spreadsheet, together with
// the empty cells covered by its column span.
//
// All derived state is computed by NewCell. The only mutation afterwards is
// SetStyle, which is meant for the owning row and must not race with
// serialization.
type Cell struct {
	value      string
	valueType  ValueType
	opts       CellOptions
	attrs      Attributes
	paragraphs Container[*Paragraph]
}

// New creates a cell from an arbitrary Go value. See ValueOf.
func New(v any, opts ...Option) (*Cell, error) {
	return NewCell(ValueOf(v), opts...)
}

// NewCell classifies v, builds the cell attributes and composes the text
// content. A negative span is rejected with a *ConfigurationError.
func NewCell(v Value, opts ...Option) (*Cell, error) {
	var o CellOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	value, t := Classify(v, o.Type)
	if value == "" {
		// Links only decorate content; an empty cell has none.
		o.URL = ""
	}

	c := &Cell{
		value:     value,
		valueType: t,
		opts:      o,
		attrs:     BuildAttributes(t, value, o),
	}
	c.composeContent()
	return c, nil
}

// composeContent adds the text paragraph of a non-empty string cell.
func (c *Cell) composeContent() {
	if !c.ContainsString() {
		return
	}
	p := NewParagraph()
	if c.ContainsURL() {
		p.RenderLink(c.value, c.opts.URL)
	} else {
		p.RenderText(c.value)
	}
	c.paragraphs.AppendChild(p)
}

// Value returns the normalized text of the cell value.
func (c *Cell) Value() string { return c.value }

// Type returns the given or inferred value type.
func (c *Cell) Type() ValueType { return c.valueType }

// URL returns the hyperlink target, empty for cells without a link.
func (c *Cell) URL() string { return c.opts.URL }

// Formula returns the cell formula.
func (c *Cell) Formula() string { return c.opts.Formula }

// Style returns the referenced style name.
func (c *Cell) Style() string { return c.opts.Style }

// MatrixFormula reports whether the formula is a matrix formula.
func (c *Cell) MatrixFormula() bool { return c.opts.MatrixFormula }

// Span returns the number of columns the cell occupies (at least 1).
func (c *Cell) Span() int { return c.opts.columns() }

// Options returns the options the cell was built with.
func (c *Cell) Options() CellOptions { return c.opts }

// Attributes returns a copy of the table:table-cell attributes.
func (c *Cell) Attributes() Attributes { return c.attrs.clone() }

// Paragraph returns the content paragraph of a string cell.
func (c *Cell) Paragraph() (*Paragraph, bool) {
	if c.paragraphs.Len() == 0 {
		return nil, false
	}
	return c.paragraphs.Children()[0], true
}

// ContainsURL reports whether the cell content is a hyperlink.
func (c *Cell) ContainsURL() bool { return c.opts.URL != "" }

// ContainsString reports whether the cell holds non-empty string content.
func (c *Cell) ContainsString() bool {
	return c.valueType == TypeString && c.value != ""
}

// SetStyle sets the referenced style name. table:style-name stays in its
// usual position among the attributes.
func (c *Cell) SetStyle(name string) {
	c.opts.Style = name
	c.attrs = BuildAttributes(c.valueType, c.value, c.opts)
}

// EncodeXML writes the cell followed by one empty table:table-cell for every
// further column it spans.
func (c *Cell) EncodeXML(enc *xml.Encoder) error {
	m := markup{enc}
	if err := m.openTag(tagCell, c.attrs); err != nil {
		return err
	}
	if err := c.paragraphs.EncodeChildren(enc); err != nil {
		return err
	}
	if err := m.closeTag(tagCell); err != nil {
		return err
	}
	for i := 1; i < c.Span(); i++ {
		if err := m.emptyTag(tagCell, nil); err != nil {
			return err
		}
	}
	return nil
}

// WriteXML writes the cell markup to w.
func (c *Cell) WriteXML(w io.Writer) error {
	return writeElement(w, c)
}

// XML returns the cell markup.
func (c *Cell) XML() string {
	return elementString(c)
}
