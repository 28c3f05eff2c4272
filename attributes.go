package odfcell

import "strconv"

// ODF attribute names written on table:table-cell.
const (
	AttrValueType            = "office:value-type"
	AttrValue                = "office:value"
	AttrDateValue            = "office:date-value"
	AttrTimeValue            = "office:time-value"
	AttrFormula              = "table:formula"
	AttrStyleName            = "table:style-name"
	AttrColumnsSpanned       = "table:number-columns-spanned"
	AttrMatrixColumnsSpanned = "table:number-matrix-columns-spanned"
	AttrMatrixRowsSpanned    = "table:number-matrix-rows-spanned"
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Order is serialization order.
type Attributes []Attr

// Get returns the value of the named attribute.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the named attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Names returns the attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a) }

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// BuildAttributes maps a classified value and its options to the attribute
// set of a table:table-cell. The rules, in output order:
//
//  1. office:value-type when the type is known and the value is non-empty,
//     a formula is set, or the type is string
//  2. exactly one of office:date-value, office:time-value or office:value
//     when the type is not string and the value is non-empty
//  3. table:formula when a formula is set
//  4. table:style-name when a style is set
//  5. table:number-columns-spanned when a span was given, even a span of 1
//  6. both matrix span attributes fixed to "1" for matrix formulas
func BuildAttributes(t ValueType, value string, o CellOptions) Attributes {
	var attrs Attributes

	if t != TypeNone && (value != "" || o.Formula != "" || t == TypeString) {
		attrs = append(attrs, Attr{AttrValueType, t.String()})
	}

	if t != TypeString && value != "" {
		switch t {
		case TypeDate:
			attrs = append(attrs, Attr{AttrDateValue, value})
		case TypeTime:
			attrs = append(attrs, Attr{AttrTimeValue, value})
		default: // float, percentage, currency
			attrs = append(attrs, Attr{AttrValue, value})
		}
	}

	if o.Formula != "" {
		attrs = append(attrs, Attr{AttrFormula, o.Formula})
	}

	if o.Style != "" {
		attrs = append(attrs, Attr{AttrStyleName, o.Style})
	}

	if o.Span != 0 {
		attrs = append(attrs, Attr{AttrColumnsSpanned, strconv.Itoa(o.Span)})
	}

	if o.MatrixFormula {
		attrs = append(attrs,
			Attr{AttrMatrixColumnsSpanned, "1"},
			Attr{AttrMatrixRowsSpanned, "1"},
		)
	}

	return attrs
}
