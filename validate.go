package odfcell

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"gopkg.in/yaml.v3"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Build will fail
	SeverityWarning                 // Output may not be what the author meant
)

// ValidationIssue represents a single problem found in a table spec.
// Row and Cell are 1-based; zero means the issue concerns the whole table or row.
type ValidationIssue struct {
	Severity Severity
	Row      int
	Cell     int
	Message  string
}

// String formats the issue as "[ERROR] row 2 cell 1: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	switch {
	case v.Row == 0:
		return fmt.Sprintf("[%s] table: %s", sev, v.Message)
	case v.Cell == 0:
		return fmt.Sprintf("[%s] row %d: %s", sev, v.Row, v.Message)
	default:
		return fmt.Sprintf("[%s] row %d cell %d: %s", sev, v.Row, v.Cell, v.Message)
	}
}

// Validate checks a spec without building it, collecting every issue
// instead of stopping at the first one. Template expressions are only
// checked for syntax.
func (s TableSpec) Validate() []ValidationIssue {
	var issues []ValidationIssue
	if strings.TrimSpace(s.Name) == "" {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Message: "table name is empty"})
	}
	if len(s.Rows) == 0 {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Message: "table has no rows"})
	}

	widths := make([]int, len(s.Rows))
	for i, rs := range s.Rows {
		for j, cs := range rs.Cells {
			issue := func(sev Severity, format string, args ...any) {
				issues = append(issues, ValidationIssue{
					Severity: sev, Row: i + 1, Cell: j + 1, Message: fmt.Sprintf(format, args...),
				})
			}

			o, err := cs.Options()
			if err != nil {
				issue(SeverityError, "%v", err)
				widths[i]++
				continue
			}
			widths[i] += o.columns()

			if cs.Value.Kind == yaml.ScalarNode && cs.Value.ShortTag() == "!!str" && strings.Contains(cs.Value.Value, "${") {
				for _, seg := range parseExpressions(cs.Value.Value, "${", "}") {
					if !seg.isExpression {
						continue
					}
					if _, err := expr.Compile(seg.text, expr.AllowUndefinedVariables()); err != nil {
						issue(SeverityError, "invalid expression syntax %q: %v", seg.text, err)
					}
				}
				continue
			}

			v, err := valueFromNode(&cs.Value)
			if err != nil {
				issue(SeverityError, "%v", err)
				continue
			}
			_, t := Classify(v, o.Type)
			if o.URL != "" && (t != TypeString || v.IsEmpty()) {
				issue(SeverityWarning, "url %q is ignored for empty or non-string cells", o.URL)
			}
			if o.MatrixFormula && o.Formula == "" {
				issue(SeverityWarning, "matrix_formula is set without a formula")
			}
		}
	}

	widest := 0
	for _, w := range widths {
		widest = max(widest, w)
	}
	for i, w := range widths {
		if w != widest {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Row:      i + 1,
				Message:  fmt.Sprintf("row covers %d columns, widest row covers %d", w, widest),
			})
		}
	}
	return issues
}
