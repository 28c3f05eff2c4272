package odfcell

import "encoding/xml"

const (
	tagParagraph = "text:p"
	tagLink      = "text:a"
)

// TextRun is plain text inside a paragraph.
type TextRun struct {
	Text string
}

// EncodeXML implements Element.
func (r TextRun) EncodeXML(enc *xml.Encoder) error {
	return markup{enc}.text(r.Text)
}

// Link is a hyperlink run inside a paragraph.
type Link struct {
	Text string
	Href string
}

// EncodeXML implements Element.
func (l Link) EncodeXML(enc *xml.Encoder) error {
	m := markup{enc}
	attrs := Attributes{
		{"xlink:type", "simple"},
		{"xlink:href", l.Href},
	}
	if err := m.openTag(tagLink, attrs); err != nil {
		return err
	}
	if err := m.text(l.Text); err != nil {
		return err
	}
	return m.closeTag(tagLink)
}

// Paragraph is a text:p element holding text and link runs.
type Paragraph struct {
	Container[Element]
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// RenderText appends a plain text run.
func (p *Paragraph) RenderText(s string) {
	p.AppendChild(TextRun{Text: s})
}

// RenderLink appends a hyperlink run pointing at href.
func (p *Paragraph) RenderLink(text, href string) {
	p.AppendChild(Link{Text: text, Href: href})
}

// EncodeXML implements Element.
func (p *Paragraph) EncodeXML(enc *xml.Encoder) error {
	m := markup{enc}
	if err := m.openTag(tagParagraph, nil); err != nil {
		return err
	}
	if err := p.EncodeChildren(enc); err != nil {
		return err
	}
	return m.closeTag(tagParagraph)
}

// XML returns the paragraph markup.
func (p *Paragraph) XML() string {
	return elementString(p)
}
