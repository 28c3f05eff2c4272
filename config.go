package odfcell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TableSpec is the declarative form of a table, usually loaded from YAML:
//
//	name: Report
//	rows:
//	  - style: ro1
//	    cells:
//	      - value: Total
//	      - value: 42
//	        span: 2
//	      - value: 2024-03-01
//	      - value: Docs
//	        url: https://example.com
type TableSpec struct {
	Name string    `yaml:"name"`
	Rows []RowSpec `yaml:"rows"`
}

// RowSpec describes one row.
type RowSpec struct {
	Style     string     `yaml:"style"`
	CellStyle string     `yaml:"cell_style"`
	Cells     []CellSpec `yaml:"cells"`
}

// CellSpec describes one cell. Value and Span keep their YAML nodes so the
// scalar tag decides how they are interpreted.
type CellSpec struct {
	Value         yaml.Node `yaml:"value"`
	Type          string    `yaml:"type"`
	URL           string    `yaml:"url"`
	Formula       string    `yaml:"formula"`
	Style         string    `yaml:"style"`
	Span          yaml.Node `yaml:"span"`
	MatrixFormula bool      `yaml:"matrix_formula"`
}

// DecodeTableSpec reads a YAML table spec without building it. Unknown
// keys are rejected.
func DecodeTableSpec(r io.Reader) (TableSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec TableSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("decode table spec: empty document")
		}
		return spec, fmt.Errorf("decode table spec: %w", err)
	}
	return spec, nil
}

// LoadTable reads a YAML table spec and builds the table.
func LoadTable(r io.Reader) (*Table, error) {
	spec, err := DecodeTableSpec(r)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// ParseTable builds a table from YAML bytes.
func ParseTable(data []byte) (*Table, error) {
	return LoadTable(bytes.NewReader(data))
}

// Build creates the table described by the spec.
func (s TableSpec) Build() (*Table, error) {
	return s.BuildWith(nil, nil)
}

// BuildWith creates the table, evaluating string cell values as templates
// against data when ev is non-nil.
func (s TableSpec) BuildWith(ev *Evaluator, data map[string]any) (*Table, error) {
	t, err := NewTable(s.Name)
	if err != nil {
		return nil, err
	}
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("table %q: %w", s.Name, ErrNoRows)
	}

	for i, rs := range s.Rows {
		row := t.AddRow(WithRowStyle(rs.Style), WithDefaultCellStyle(rs.CellStyle))
		for j, cs := range rs.Cells {
			c, err := cs.build(ev, data)
			if err != nil {
				return nil, fmt.Errorf("table %q row %d cell %d: %w", s.Name, i+1, j+1, err)
			}
			row.Append(c)
		}
	}
	return t, nil
}

// Options converts the spec fields other than the value.
func (cs CellSpec) Options() (CellOptions, error) {
	o := CellOptions{
		URL:           cs.URL,
		Formula:       cs.Formula,
		Style:         cs.Style,
		MatrixFormula: cs.MatrixFormula,
	}
	if strings.TrimSpace(cs.Type) != "" {
		t, err := ParseValueType(cs.Type)
		if err != nil {
			return o, &ConfigurationError{Field: "type", Value: cs.Type, Err: ErrUnknownValueType}
		}
		o.Type = t
	}
	span, err := spanFromNode(&cs.Span)
	if err != nil {
		return o, err
	}
	o.Span = span
	return o, nil
}

func (cs CellSpec) build(ev *Evaluator, data map[string]any) (*Cell, error) {
	o, err := cs.Options()
	if err != nil {
		return nil, err
	}

	if ev != nil && cs.Value.Kind == yaml.ScalarNode && cs.Value.ShortTag() == "!!str" {
		v, url, err := ev.Value(cs.Value.Value, data)
		if err != nil {
			return nil, err
		}
		if o.URL == "" {
			o.URL = url
		}
		return NewCell(v, WithOptions(o))
	}

	v, err := valueFromNode(&cs.Value)
	if err != nil {
		return nil, err
	}
	return NewCell(v, WithOptions(o))
}

// valueFromNode maps a YAML scalar to a Value by its resolved tag.
func valueFromNode(n *yaml.Node) (Value, error) {
	if n.Kind == 0 {
		return Empty(), nil
	}
	if n.Kind != yaml.ScalarNode {
		return Value{}, &ConfigurationError{Field: "value", Value: nodeKind(n), Err: ErrInvalidValue}
	}

	switch n.ShortTag() {
	case "!!null":
		return Empty(), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, &ConfigurationError{Field: "value", Value: n.Value, Err: ErrInvalidValue}
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, &ConfigurationError{Field: "value", Value: n.Value, Err: ErrInvalidValue}
		}
		return Float(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return Value{}, &ConfigurationError{Field: "value", Value: n.Value, Err: ErrInvalidValue}
		}
		if len(strings.TrimSpace(n.Value)) == len(DateLayout) {
			return Date(t), nil
		}
		return DateTime(t), nil
	default:
		return Text(n.Value), nil
	}
}

// spanFromNode accepts a missing span or a positive integer scalar.
func spanFromNode(n *yaml.Node) (int, error) {
	if n.Kind == 0 {
		return 0, nil
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, &ConfigurationError{Field: "span", Value: n.Value, Err: ErrInvalidSpan}
	}
	var span int
	if err := n.Decode(&span); err != nil || span < 1 {
		return 0, &ConfigurationError{Field: "span", Value: n.Value, Err: ErrInvalidSpan}
	}
	return span, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
