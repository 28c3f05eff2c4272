package odfcell

// HyperlinkValue is display text paired with a link target. When a template
// expression evaluates to this type, the resulting cell renders its text as
// a text:a link.
type HyperlinkValue struct {
	URL     string
	Display string
}

// String returns the display text, falling back to the URL.
func (h HyperlinkValue) String() string {
	if h.Display != "" {
		return h.Display
	}
	return h.URL
}

// Hyperlink creates a HyperlinkValue for use in template expressions.
// Usage in a template: ${hyperlink(e.URL, e.Title)}
func Hyperlink(url, display string) HyperlinkValue {
	return HyperlinkValue{URL: url, Display: display}
}
