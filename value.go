package odfcell

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindTemporal
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindTemporal:
		return "Temporal"
	default:
		return "Unknown"
	}
}

// Default renderings of temporal values. Callers that need a particular
// date or time style should pass pre-formatted text with an explicit type.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05-07:00"
	TimeLayout     = "15:04:05"
)

// Value is the raw content of a cell before classification.
// The zero Value is empty.
type Value struct {
	kind     Kind
	text     string // number literal or text
	t        time.Time
	dateOnly bool
}

// Empty returns an empty value.
func Empty() Value { return Value{} }

// Int returns a numeric value.
func Int(n int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)}
}

// Float returns a numeric value.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Text returns a textual value with surrounding whitespace removed.
// Text that is blank after trimming is empty.
func Text(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Date returns a temporal value rendered as a calendar date by default.
func Date(t time.Time) Value {
	return Value{kind: KindTemporal, t: t, dateOnly: true}
}

// DateTime returns a temporal value rendered with date, clock and offset by default.
func DateTime(t time.Time) Value {
	return Value{kind: KindTemporal, t: t}
}

// ValueOf wraps an arbitrary Go value. Types are probed in a fixed order:
// nil, numbers (including json.Number), strings, time.Time, HyperlinkValue,
// then anything else through fmt.Sprint.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Value{kind: KindNumber, text: strconv.FormatUint(uint64(x), 10)}
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Value{kind: KindNumber, text: strconv.FormatUint(x, 10)}
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(x), 'f', -1, 32)}
	case float64:
		return Float(x)
	case json.Number:
		return Value{kind: KindNumber, text: x.String()}
	case string:
		return Text(x)
	case time.Time:
		return DateTime(x)
	case *time.Time:
		if x == nil {
			return Value{}
		}
		return DateTime(*x)
	case HyperlinkValue:
		return Text(x.String())
	}
	s := fmt.Sprint(v)
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v carries no content.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Time returns the temporal payload of v.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTemporal {
		return time.Time{}, false
	}
	return v.t, true
}

// String returns the default textual representation of v.
func (v Value) String() string {
	if v.kind == KindTemporal {
		if v.dateOnly {
			return v.t.Format(DateLayout)
		}
		return v.t.Format(DateTimeLayout)
	}
	return v.text
}
