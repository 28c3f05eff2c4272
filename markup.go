package odfcell

import (
	"encoding/xml"
	"io"
	"strings"
)

// Element is a node of the table tree that can write itself as XML.
type Element interface {
	EncodeXML(enc *xml.Encoder) error
}

// markup emits prefixed ODF names (e.g. "table:table-cell") verbatim.
// Namespace declarations belong to the enclosing document.
type markup struct {
	enc *xml.Encoder
}

func xmlAttrs(attrs Attributes) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value}
	}
	return out
}

func (m markup) openTag(name string, attrs Attributes) error {
	return m.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: xmlAttrs(attrs)})
}

func (m markup) closeTag(name string) error {
	return m.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (m markup) emptyTag(name string, attrs Attributes) error {
	if err := m.openTag(name, attrs); err != nil {
		return err
	}
	return m.closeTag(name)
}

func (m markup) text(s string) error {
	return m.enc.EncodeToken(xml.CharData(s))
}

// writeElement encodes e to w and flushes.
func writeElement(w io.Writer, e Element) error {
	enc := xml.NewEncoder(w)
	if err := e.EncodeXML(enc); err != nil {
		return err
	}
	return enc.Flush()
}

// elementString renders e into memory. The names and tokens written by this
// package are always well-formed, so encoding into a strings.Builder cannot fail.
func elementString(e Element) string {
	var b strings.Builder
	_ = writeElement(&b, e)
	return b.String()
}
