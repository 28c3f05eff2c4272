package odfcell

import "strconv"

// CellOptions holds everything a cell can be configured with besides its value.
type CellOptions struct {
	Type          ValueType // explicit value type; TypeNone lets the value decide
	URL           string    // hyperlink target for string content
	Formula       string    // table:formula expression
	Style         string    // table:style-name reference
	Span          int       // columns spanned; 0 means not given
	MatrixFormula bool      // marks the formula as a 1x1 matrix formula
}

// Option configures a Cell.
type Option func(*CellOptions)

// WithType sets an explicit value type instead of inferring one.
func WithType(t ValueType) Option {
	return func(o *CellOptions) { o.Type = t }
}

// WithURL renders the cell's text as a hyperlink to url.
func WithURL(url string) Option {
	return func(o *CellOptions) { o.URL = url }
}

// WithFormula sets the cell formula, e.g. "of:=[.A1]+[.A2]".
func WithFormula(formula string) Option {
	return func(o *CellOptions) { o.Formula = formula }
}

// WithStyle references a cell style defined elsewhere in the document.
func WithStyle(name string) Option {
	return func(o *CellOptions) { o.Style = name }
}

// WithSpan sets the number of columns the cell occupies (default: 1).
// Setting it explicitly always writes table:number-columns-spanned, even for 1.
func WithSpan(n int) Option {
	return func(o *CellOptions) { o.Span = n }
}

// WithMatrixFormula marks the formula as a matrix formula.
func WithMatrixFormula(matrix bool) Option {
	return func(o *CellOptions) { o.MatrixFormula = matrix }
}

// WithOptions replaces all options at once.
func WithOptions(opts CellOptions) Option {
	return func(o *CellOptions) { *o = opts }
}

func (o CellOptions) validate() error {
	if o.Span < 0 {
		return &ConfigurationError{Field: "span", Value: strconv.Itoa(o.Span), Err: ErrInvalidSpan}
	}
	return nil
}

// columns is the number of table columns the cell occupies.
func (o CellOptions) columns() int {
	if o.Span < 1 {
		return 1
	}
	return o.Span
}
