package odfcell

import (
	"fmt"
	"strings"
)

// ValueType is the ODF office:value-type of a cell.
type ValueType int

const (
	TypeNone ValueType = iota // not given and not inferred (empty cells)
	TypeString
	TypeFloat
	TypePercentage
	TypeCurrency
	TypeDate
	TypeTime
)

var valueTypeNames = [...]string{
	TypeNone:       "",
	TypeString:     "string",
	TypeFloat:      "float",
	TypePercentage: "percentage",
	TypeCurrency:   "currency",
	TypeDate:       "date",
	TypeTime:       "time",
}

// String returns the ODF token for the type, or "" for TypeNone.
func (t ValueType) String() string {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
	return valueTypeNames[t]
}

// IsNumeric reports whether values of this type are written to office:value.
func (t ValueType) IsNumeric() bool {
	return t == TypeFloat || t == TypePercentage || t == TypeCurrency
}

// ParseValueType parses an ODF value-type token such as "float" or "date".
// Only the six types understood by this package are accepted.
func ParseValueType(s string) (ValueType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range valueTypeNames {
		if name != "" && name == s {
			return ValueType(i), nil
		}
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrUnknownValueType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty text leaves
// the type unset.
func (t *ValueType) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*t = TypeNone
		return nil
	}
	v, err := ParseValueType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
