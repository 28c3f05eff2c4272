package odfcell

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeAndReopen writes the workbook and opens it again, like a consumer would.
func writeAndReopen(t *testing.T, w *XLSXWriter) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func buildXLSXTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable("Sheet1")
	require.NoError(t, err)

	r1 := tbl.AddRow()
	_, err = r1.AddCell("Header", WithSpan(3), WithStyle("bold"))
	require.NoError(t, err)
	_, err = r1.AddCell("Docs", WithURL("https://example.com/docs"))
	require.NoError(t, err)

	r2 := tbl.AddRow()
	_, err = r2.AddCell(9.5)
	require.NoError(t, err)
	_, err = r2.AddCell(2)
	require.NoError(t, err)
	_, err = r2.AddCell("", WithType(TypeFloat), WithFormula("of:=[.A2]+[.B2]"))
	require.NoError(t, err)
	_, err = r2.AddCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	r3 := tbl.AddRow()
	_, err = r3.AddCell(time.Date(2024, 3, 1, 13, 45, 30, 0, time.UTC), WithType(TypeTime))
	require.NoError(t, err)
	_, err = r3.AddCell(4, WithFormula("of:=[.A2]*2"), WithMatrixFormula(true))
	require.NoError(t, err)
	return tbl
}

func TestXLSXWriter_WriteTable(t *testing.T) {
	w := NewXLSXWriter(nil)
	require.NoError(t, w.DefineStyle("bold", &excelize.Style{Font: &excelize.Font{Bold: true}}))
	require.NoError(t, w.WriteTable(buildXLSXTable(t)))

	out := writeAndReopen(t, w)
	sheet := "Sheet1"

	v, err := out.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Header", v)

	// The span of 3 pushes the link to column D.
	v, _ = out.GetCellValue(sheet, "D1")
	assert.Equal(t, "Docs", v)
	ok, link, err := out.GetCellHyperLink(sheet, "D1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/docs", link)

	merges, err := out.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A1", merges[0].GetStartAxis())
	assert.Equal(t, "C1", merges[0].GetEndAxis())

	styleID, err := out.GetCellStyle(sheet, "A1")
	require.NoError(t, err)
	assert.Greater(t, styleID, 0)

	v, _ = out.GetCellValue(sheet, "A2")
	assert.Equal(t, "9.5", v)
	v, _ = out.GetCellValue(sheet, "B2")
	assert.Equal(t, "2", v)

	formula, err := out.GetCellFormula(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "A2+B2", formula)

	raw, err := out.GetCellValue(sheet, "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	serial, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, 45352, serial, 1e-6) // 2024-03-01

	raw, _ = out.GetCellValue(sheet, "A3", excelize.Options{RawCellValue: true})
	frac, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, (13*3600+45*60+30)/86400.0, frac, 1e-6)

	formula, err = out.GetCellFormula(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "A2*2", formula)
}

func TestXLSXWriter_NewSheetFromTableName(t *testing.T) {
	tbl, err := NewTable("Q1/Q2 [draft]")
	require.NoError(t, err)
	_, err = tbl.AddRow().AddCell("x")
	require.NoError(t, err)

	w := NewXLSXWriter(excelize.NewFile())
	require.NoError(t, w.WriteTable(tbl))

	out := writeAndReopen(t, w)
	assert.Contains(t, out.GetSheetList(), "Q1_Q2 _draft_")
	v, _ := out.GetCellValue("Q1_Q2 _draft_", "A1")
	assert.Equal(t, "x", v)
}

func TestXLSXWriter_FallbackToString(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tbl, err := NewTable("Sheet1")
	require.NoError(t, err)
	row := tbl.AddRow()
	_, err = row.AddCell("n/a", WithType(TypeFloat))
	require.NoError(t, err)
	_, err = row.AddCell("someday", WithType(TypeDate), WithStyle("undefined"))
	require.NoError(t, err)

	w := NewXLSXWriter(nil, WithLogger(logger))
	require.NoError(t, w.WriteTable(tbl))
	assert.Same(t, w.File(), w.file)

	out := writeAndReopen(t, w)
	v, _ := out.GetCellValue("Sheet1", "A1")
	assert.Equal(t, "n/a", v)
	v, _ = out.GetCellValue("Sheet1", "B1")
	assert.Equal(t, "someday", v)

	assert.Contains(t, logs.String(), "value does not match type")
	assert.Contains(t, logs.String(), "style not defined for xlsx")
}

func TestXLSXFormula(t *testing.T) {
	cases := map[string]string{
		"of:=SUM([.A1:.A3])": "SUM(A1:A3)",
		"=[Sheet2.B4]*2":     "Sheet2!B4*2",
		"of:=[$Data.$A$1]+1": "Data!$A$1+1",
		"A1+A2":              "A1+A2",
		" of:=[.A1]*[.B1] ":  "A1*B1",
	}
	for in, want := range cases {
		assert.Equal(t, want, xlsxFormula(in), in)
	}
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "Normal Name", SafeSheetName("Normal Name"))
	assert.Equal(t, "Sheet_1_2", SafeSheetName("Sheet/1:2"))
	assert.Equal(t, "_a__b_", SafeSheetName("[a*?b]"))
	long := "This Is A Very Long Sheet Name That Exceeds Limit"
	assert.Len(t, []rune(SafeSheetName(long)), 31)
}
