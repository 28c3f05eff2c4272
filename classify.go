package odfcell

// Classify determines the value type of v and its normalized text.
//
// An empty value keeps the explicit type (possibly TypeNone) and yields no
// text. Without an explicit type, numbers are float, temporal values are
// date and everything else is string. A temporal value explicitly typed as
// time is rendered with TimeLayout; every other value uses its default
// textual form. Explicit types are trusted even when they do not match the
// value's kind.
func Classify(v Value, explicit ValueType) (string, ValueType) {
	if v.IsEmpty() {
		return "", explicit
	}

	t := explicit
	if t == TypeNone {
		t = inferType(v)
	}

	if tm, ok := v.Time(); ok && t == TypeTime {
		return tm.Format(TimeLayout), t
	}
	return v.String(), t
}

// inferType never yields TypeTime: an inferred temporal value carries a date.
func inferType(v Value) ValueType {
	switch v.Kind() {
	case KindNumber:
		return TypeFloat
	case KindTemporal:
		return TypeDate
	default:
		return TypeString
	}
}
