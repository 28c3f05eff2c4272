package odfcell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_DefaultCellStyle(t *testing.T) {
	r := NewRow(WithDefaultCellStyle("ce1"))

	plain, err := r.AddCell("a")
	require.NoError(t, err)
	styled, err := r.AddCell("b", WithStyle("ce9"))
	require.NoError(t, err)

	assert.Equal(t, "ce1", plain.Style())
	assert.Equal(t, "ce9", styled.Style())
	assert.Equal(t, []string{AttrValueType, AttrStyleName}, plain.Attributes().Names())
}

func TestRow_AddCellError(t *testing.T) {
	r := NewRow()
	_, err := r.AddCell(1, WithSpan(-1))
	assert.True(t, errors.Is(err, ErrInvalidSpan))
	assert.Equal(t, 0, r.Len())
}

func TestRow_Columns(t *testing.T) {
	r := NewRow()
	_, err := r.AddCell("wide", WithSpan(3))
	require.NoError(t, err)
	_, err = r.AddCell(1)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Columns())
	assert.Len(t, r.Cells(), 2)
}

func TestRow_XML(t *testing.T) {
	r := NewRow(WithRowStyle("ro1"))
	c, err := New(1)
	require.NoError(t, err)
	r.Append(c)

	assert.Equal(t, "ro1", r.Style())
	assert.Equal(t,
		`<table:table-row table:style-name="ro1"><table:table-cell office:value-type="float" office:value="1"></table:table-cell></table:table-row>`,
		elementString(r))
}

func TestTable_XML(t *testing.T) {
	tbl, err := NewTable("Sheet1")
	require.NoError(t, err)

	header := tbl.AddRow()
	_, err = header.AddCell("Report", WithSpan(2))
	require.NoError(t, err)

	body := tbl.AddRow()
	_, err = body.AddCell(10)
	require.NoError(t, err)
	_, err = body.AddCell("", WithFormula("of:=[.A2]*2"), WithType(TypeFloat))
	require.NoError(t, err)

	want := `<table:table table:name="Sheet1">` +
		`<table:table-row><table:table-cell office:value-type="string" table:number-columns-spanned="2"><text:p>Report</text:p></table:table-cell><table:table-cell></table:table-cell></table:table-row>` +
		`<table:table-row><table:table-cell office:value-type="float" office:value="10"></table:table-cell><table:table-cell office:value-type="float" table:formula="of:=[.A2]*2"></table:table-cell></table:table-row>` +
		`</table:table>`
	assert.Equal(t, want, tbl.XML())

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteXML(&buf))
	assert.Equal(t, want, buf.String())

	assert.Equal(t, "Sheet1", tbl.Name())
	assert.Equal(t, 2, tbl.Columns())
	assert.Len(t, tbl.Rows(), 2)
}

func TestNewTable_InvalidName(t *testing.T) {
	_, err := NewTable("  ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTableName))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "name", cfgErr.Field)
	assert.Contains(t, cfgErr.Error(), "invalid table name")
}
