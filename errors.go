package odfcell

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSpan      = errors.New("invalid column span")
	ErrUnknownValueType = errors.New("unknown value type")
	ErrInvalidTableName = errors.New("invalid table name")
	ErrNoRows           = errors.New("table has no rows")
	ErrInvalidValue     = errors.New("invalid cell value")
)

// ConfigurationError reports a cell option or table spec field that cannot
// be turned into valid output.
type ConfigurationError struct {
	Field string // option or spec field, e.g. "span"
	Value string // offending value as written by the caller
	Err   error  // one of the sentinel errors above
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
