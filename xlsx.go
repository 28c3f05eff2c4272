package odfcell

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter mirrors tables into an excelize workbook, so the same cell
// model can be delivered as .xlsx next to the ODF markup.
type XLSXWriter struct {
	file   *excelize.File
	styles map[string]int // ODF style name → excelize style ID
	logger *slog.Logger
}

// XLSXOption configures an XLSXWriter.
type XLSXOption func(*XLSXWriter)

// WithLogger sets the logger for conversion fallbacks (default: discard).
func WithLogger(l *slog.Logger) XLSXOption {
	return func(w *XLSXWriter) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewXLSXWriter wraps f. A nil f starts a new workbook.
func NewXLSXWriter(f *excelize.File, opts ...XLSXOption) *XLSXWriter {
	if f == nil {
		f = excelize.NewFile()
	}
	w := &XLSXWriter{
		file:   f,
		styles: make(map[string]int),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// File returns the underlying workbook.
func (w *XLSXWriter) File() *excelize.File { return w.file }

// DefineStyle registers the excelize style used for cells referencing name.
func (w *XLSXWriter) DefineStyle(name string, style *excelize.Style) error {
	id, err := w.file.NewStyle(style)
	if err != nil {
		return fmt.Errorf("define style %q: %w", name, err)
	}
	w.styles[name] = id
	return nil
}

// WriteTable writes t to the sheet named after it, creating the sheet if
// needed. Spanned cells become merged ranges.
func (w *XLSXWriter) WriteTable(t *Table) error {
	sheet := SafeSheetName(t.Name())
	idx, err := w.file.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("lookup sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := w.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}

	for i, row := range t.Rows() {
		col := 1
		for _, c := range row.Cells() {
			if err := w.writeCell(sheet, col, i+1, c); err != nil {
				return err
			}
			col += c.Span()
		}
	}
	return nil
}

// Write writes the workbook to out.
func (w *XLSXWriter) Write(out io.Writer) error {
	return w.file.Write(out)
}

func (w *XLSXWriter) writeCell(sheet string, col, row int, c *Cell) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell at row %d col %d: %w", row, col, err)
	}

	if err := w.writeValue(sheet, name, c); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, name, err)
	}

	if c.Formula() != "" {
		formula := xlsxFormula(c.Formula())
		var opts []excelize.FormulaOpts
		if c.MatrixFormula() {
			arrayType, ref := excelize.STCellFormulaTypeArray, name
			opts = append(opts, excelize.FormulaOpts{Type: &arrayType, Ref: &ref})
		}
		if err := w.file.SetCellFormula(sheet, name, formula, opts...); err != nil {
			return fmt.Errorf("set formula %s!%s: %w", sheet, name, err)
		}
	}

	if c.ContainsURL() {
		if err := w.file.SetCellHyperLink(sheet, name, c.URL(), "External"); err != nil {
			return fmt.Errorf("set hyperlink %s!%s: %w", sheet, name, err)
		}
	}

	if style := c.Style(); style != "" {
		if id, ok := w.styles[style]; ok {
			if err := w.file.SetCellStyle(sheet, name, name, id); err != nil {
				return fmt.Errorf("set style %s!%s: %w", sheet, name, err)
			}
		} else {
			w.logger.Debug("style not defined for xlsx", "sheet", sheet, "cell", name, "style", style)
		}
	}

	if span := c.Span(); span > 1 {
		last, err := excelize.CoordinatesToCellName(col+span-1, row)
		if err != nil {
			return fmt.Errorf("span of %s: %w", name, err)
		}
		if err := w.file.MergeCell(sheet, name, last); err != nil {
			return fmt.Errorf("merge %s:%s: %w", name, last, err)
		}
	}
	return nil
}

// writeValue stores the typed value. Text that does not parse as its
// declared type is written as a string.
func (w *XLSXWriter) writeValue(sheet, name string, c *Cell) error {
	value := c.Value()
	if value == "" {
		return nil
	}

	switch t := c.Type(); {
	case t.IsNumeric():
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return w.file.SetCellValue(sheet, name, f)
		}
	case t == TypeDate:
		if tm, ok := parseDate(value); ok {
			return w.file.SetCellValue(sheet, name, tm)
		}
	case t == TypeTime:
		if d, ok := parseClock(value); ok {
			return w.file.SetCellValue(sheet, name, d)
		}
	default:
		return w.file.SetCellStr(sheet, name, value)
	}

	w.logger.Debug("value does not match type, writing string",
		"sheet", sheet, "cell", name, "type", c.Type().String(), "value", value)
	return w.file.SetCellStr(sheet, name, value)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{DateLayout, DateTimeLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseClock reads "15:04:05" as the duration since midnight.
func parseClock(s string) (time.Duration, bool) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, true
}

// odfRefRegex matches bracketed OpenFormula references such as [.A1],
// [.A1:.B3] or [Sheet2.C4].
var odfRefRegex = regexp.MustCompile(`\[([^\[\]]+)\]`)

// xlsxFormula converts an ODF formula ("of:=SUM([.A1:.A3])") to the
// excelize form ("SUM(A1:A3)").
func xlsxFormula(formula string) string {
	f := strings.TrimSpace(formula)
	f = strings.TrimPrefix(f, "of:")
	f = strings.TrimPrefix(f, "=")
	return odfRefRegex.ReplaceAllStringFunc(f, func(m string) string {
		parts := strings.Split(m[1:len(m)-1], ":")
		for i, p := range parts {
			p = strings.TrimPrefix(strings.TrimPrefix(p, "$"), ".")
			if sheet, ref, ok := strings.Cut(p, "."); ok {
				p = sheet + "!" + ref
			}
			parts[i] = p
		}
		return strings.Join(parts, ":")
	})
}

// SafeSheetName sanitizes a table name for use as an Excel sheet name.
// It replaces forbidden characters ([]*?/\:) with underscore and truncates to 31 chars.
func SafeSheetName(name string) string {
	forbidden := []rune{'/', '\\', ':', '*', '?', '[', ']'}
	runes := []rune(name)
	for i, r := range runes {
		for _, f := range forbidden {
			if r == f {
				runes[i] = '_'
				break
			}
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
