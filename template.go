package odfcell

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluator turns cell templates such as "${e.Price}" or "Total: ${sum}"
// into typed cell values using expr-lang/expr.
type Evaluator struct {
	notationBegin string
	notationEnd   string
	cache         sync.Map // expression string → compiled *vm.Program
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithNotation sets custom expression delimiters (default: "${", "}").
func WithNotation(begin, end string) EvaluatorOption {
	return func(e *Evaluator) {
		e.notationBegin = begin
		e.notationEnd = end
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{notationBegin: "${", notationEnd: "}"}
	for _, opt := range opts {
		opt(e)
	}
	if e.notationBegin == "" || e.notationEnd == "" {
		e.notationBegin, e.notationEnd = "${", "}"
	}
	return e
}

// Evaluate runs a single expression against data. The hyperlink function is
// always available unless data defines its own.
func (e *Evaluator) Evaluate(expression string, data map[string]any) (any, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}
	env := e.env(data)
	program, err := e.compile(expression, env)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

func (e *Evaluator) compile(expression string, env map[string]any) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}

func (e *Evaluator) env(data map[string]any) map[string]any {
	m := make(map[string]any, len(data)+1)
	for k, v := range data {
		m[k] = v
	}
	if _, ok := m["hyperlink"]; !ok {
		m["hyperlink"] = Hyperlink
	}
	return m
}

// Value evaluates a cell template. A template that is a single expression
// keeps the type of its result; mixed content always yields text. When the
// result is a HyperlinkValue, its URL is returned alongside the value.
func (e *Evaluator) Value(tmpl string, data map[string]any) (Value, string, error) {
	if exprStr, ok := extractSingleExpression(tmpl, e.notationBegin, e.notationEnd); ok {
		result, err := e.Evaluate(exprStr, data)
		if err != nil {
			return Value{}, "", fmt.Errorf("evaluate %q: %w", tmpl, err)
		}
		if h, ok := result.(HyperlinkValue); ok {
			return Text(h.String()), h.URL, nil
		}
		return ValueOf(result), "", nil
	}

	segments := parseExpressions(tmpl, e.notationBegin, e.notationEnd)
	var b strings.Builder
	for _, seg := range segments {
		if !seg.isExpression {
			b.WriteString(seg.text)
			continue
		}
		val, err := e.Evaluate(seg.text, data)
		if err != nil {
			return Value{}, "", fmt.Errorf("evaluate expression %q in %q: %w", seg.text, tmpl, err)
		}
		if val != nil {
			fmt.Fprintf(&b, "%v", val)
		}
	}
	return Text(b.String()), "", nil
}

// Cell evaluates tmpl and builds a cell from the result. A hyperlink result
// sets the cell URL; explicit options are applied after it.
func (e *Evaluator) Cell(tmpl string, data map[string]any, opts ...Option) (*Cell, error) {
	v, url, err := e.Value(tmpl, data)
	if err != nil {
		return nil, err
	}
	if url != "" {
		opts = append([]Option{WithURL(url)}, opts...)
	}
	return NewCell(v, opts...)
}

// segment is literal text or an expression without its delimiters.
type segment struct {
	isExpression bool
	text         string
}

// parseExpressions splits "Name: ${e.Name}" into
// [{false, "Name: "}, {true, "e.Name"}].
func parseExpressions(value, begin, end string) []segment {
	var segments []segment
	remaining := value

	for {
		startIdx := strings.Index(remaining, begin)
		if startIdx < 0 {
			break
		}
		searchFrom := startIdx + len(begin)
		endIdx := findMatchingEnd(remaining[searchFrom:], begin, end)
		if endIdx < 0 {
			break
		}
		endIdx += searchFrom

		if startIdx > 0 {
			segments = append(segments, segment{text: remaining[:startIdx]})
		}
		segments = append(segments, segment{isExpression: true, text: remaining[searchFrom:endIdx]})
		remaining = remaining[endIdx+len(end):]
	}

	if remaining != "" {
		segments = append(segments, segment{text: remaining})
	}
	return segments
}

// findMatchingEnd returns the index of the end delimiter closing the
// expression, skipping nested begin/end pairs.
func findMatchingEnd(s, begin, end string) int {
	depth := 0
	for i := 0; i <= len(s)-len(end); i++ {
		if strings.HasPrefix(s[i:], begin) {
			depth++
		} else if strings.HasPrefix(s[i:], end) {
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// extractSingleExpression returns "e.Name" for "${e.Name}".
func extractSingleExpression(value, begin, end string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, begin) || !strings.HasSuffix(trimmed, end) {
		return "", false
	}
	inner := trimmed[len(begin) : len(trimmed)-len(end)]
	if strings.Contains(inner, begin) {
		return "", false
	}
	return inner, true
}
