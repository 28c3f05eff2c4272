package odfcell

import "encoding/xml"

// Container owns an ordered list of child elements.
type Container[T Element] struct {
	children []T
}

// AppendChild adds child after the existing children.
func (c *Container[T]) AppendChild(child T) {
	c.children = append(c.children, child)
}

// Children returns the children in insertion order.
func (c *Container[T]) Children() []T {
	out := make([]T, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of children.
func (c *Container[T]) Len() int { return len(c.children) }

// EncodeChildren writes every child in order.
func (c *Container[T]) EncodeChildren(enc *xml.Encoder) error {
	for _, child := range c.children {
		if err := child.EncodeXML(enc); err != nil {
			return err
		}
	}
	return nil
}
