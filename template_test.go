package odfcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_SingleExpressionKeepsType(t *testing.T) {
	ev := NewEvaluator()
	data := map[string]any{
		"e": map[string]any{"Name": "Widget", "Price": 9.5, "Qty": 4},
	}

	c, err := ev.Cell("${e.Price}", data)
	require.NoError(t, err)
	assert.Equal(t, TypeFloat, c.Type())
	assert.Equal(t, "9.5", c.Value())

	c, err = ev.Cell("${e.Price * e.Qty}", data, WithType(TypeCurrency))
	require.NoError(t, err)
	assert.Equal(t, Attributes{{AttrValueType, "currency"}, {AttrValue, "38"}}, c.Attributes())

	c, err = ev.Cell("${e.Name}", data)
	require.NoError(t, err)
	assert.Equal(t, TypeString, c.Type())
	assert.Equal(t, "Widget", c.Value())
}

func TestEvaluator_MixedContentIsText(t *testing.T) {
	ev := NewEvaluator()
	v, url, err := ev.Value("Total: ${a + b} units", map[string]any{"a": 2, "b": 3})
	require.NoError(t, err)
	assert.Equal(t, "", url)
	assert.Equal(t, KindText, v.Kind())
	assert.Equal(t, "Total: 5 units", v.String())
}

func TestEvaluator_PlainText(t *testing.T) {
	v, _, err := NewEvaluator().Value("  just text ", nil)
	require.NoError(t, err)
	assert.Equal(t, Text("just text"), v)
}

func TestEvaluator_NilResultIsEmpty(t *testing.T) {
	c, err := NewEvaluator().Cell("${missing}", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, TypeNone, c.Type())
	assert.Empty(t, c.Attributes())
}

func TestEvaluator_Hyperlink(t *testing.T) {
	ev := NewEvaluator()
	data := map[string]any{"url": "https://example.com", "title": "Example Site"}

	c, err := ev.Cell("${hyperlink(url, title)}", data)
	require.NoError(t, err)
	assert.Equal(t, "Example Site", c.Value())
	assert.Equal(t, "https://example.com", c.URL())
	assert.Equal(t,
		`<table:table-cell office:value-type="string"><text:p><text:a xlink:type="simple" xlink:href="https://example.com">Example Site</text:a></text:p></table:table-cell>`,
		c.XML())

	// An explicit URL option wins over the expression's link.
	c, err = ev.Cell("${hyperlink(url, title)}", data, WithURL("https://other.example"))
	require.NoError(t, err)
	assert.Equal(t, "https://other.example", c.URL())
}

func TestEvaluator_CustomNotation(t *testing.T) {
	ev := NewEvaluator(WithNotation("{{", "}}"))
	v, _, err := ev.Value("{{ n * 2 }}", map[string]any{"n": 21})
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())
	assert.Equal(t, KindNumber, v.Kind())

	// The default notation is literal text now.
	v, _, err = ev.Value("${n}", map[string]any{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "${n}", v.String())
}

func TestEvaluator_Errors(t *testing.T) {
	ev := NewEvaluator()

	_, err := ev.Cell("${1 +}", nil)
	assert.Error(t, err)

	_, _, err = ev.Value("x ${1 +} y", nil)
	assert.Error(t, err)

	_, err = ev.Cell("${n}", map[string]any{"n": 1}, WithSpan(-1))
	assert.ErrorIs(t, err, ErrInvalidSpan)
}

func TestEvaluator_Evaluate(t *testing.T) {
	ev := NewEvaluator()

	res, err := ev.Evaluate("", nil)
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = ev.Evaluate("x > 1", map[string]any{"x": 3})
	require.NoError(t, err)
	assert.Equal(t, true, res)
}

func TestParseExpressions(t *testing.T) {
	segs := parseExpressions("Name: ${e.Name}, age ${e.Age}", "${", "}")
	assert.Equal(t, []segment{
		{text: "Name: "},
		{isExpression: true, text: "e.Name"},
		{text: ", age "},
		{isExpression: true, text: "e.Age"},
	}, segs)

	assert.Equal(t, []segment{{text: "unterminated ${x"}}, parseExpressions("unterminated ${x", "${", "}"))
}

func TestExtractSingleExpression(t *testing.T) {
	e, ok := extractSingleExpression(" ${a.b} ", "${", "}")
	assert.True(t, ok)
	assert.Equal(t, "a.b", e)

	_, ok = extractSingleExpression("${a} and ${b}", "${", "}")
	assert.False(t, ok)

	_, ok = extractSingleExpression("x ${a}", "${", "}")
	assert.False(t, ok)
}

func TestHyperlinkValue_String(t *testing.T) {
	assert.Equal(t, "Example", Hyperlink("https://example.com", "Example").String())
	assert.Equal(t, "https://example.com", HyperlinkValue{URL: "https://example.com"}.String())
}
