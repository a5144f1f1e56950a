// Package excel renders quotes as XLSX workbooks.
package excel

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.QuoteExporter = (*Exporter)(nil)

// SheetName is the name of the single worksheet in the workbook.
const SheetName = "Quote"

// gbpFormat shows whole pounds with thousands separators.
const gbpFormat = `"£"#,##0`

// Exporter writes a quote to a one-sheet workbook: a header block, the
// customer's choices, then the breakdown lines with the total last.
type Exporter struct{}

// New creates an XLSX exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns domain.ExportXLSX.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportXLSX
}

// Export renders the quote and returns the workbook bytes.
func (e *Exporter) Export(quote *domain.Quote, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 44); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 16); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f}

	w.merge("A1", "B1")
	w.set("A1", sanitizeCell(title), st.title)
	w.set("A2", "Reference: "+quote.Reference, st.subtitle)
	w.set("A3", "Date: "+quote.CreatedAt.Format("2 January 2006"), st.subtitle)

	row := 5
	choices := [][2]string{
		{"Service", quote.Selection.ServiceType.Label()},
		{"Property Size", quote.Selection.PropertySize.Label()},
		{"Package", quote.Selection.PackageLevel.Label()},
	}
	for _, c := range choices {
		w.set(cell("A", row), c[0], st.label)
		w.set(cell("B", row), sanitizeCell(c[1]), st.plain)
		row++
	}

	row++
	w.set(cell("A", row), "Item", st.header)
	w.set(cell("B", row), "Amount", st.header)
	row++

	for _, line := range quote.Lines {
		switch {
		case line.Kind == domain.LineTotal:
			w.set(cell("A", row), sanitizeCell(line.Label), st.totalLabel)
			w.set(cell("B", row), line.Amount, st.totalAmount)
		case line.Applied:
			w.set(cell("A", row), sanitizeCell(line.Label), st.line)
			w.set(cell("B", row), domain.AppliedMarker, st.marker)
		default:
			w.set(cell("A", row), sanitizeCell(line.Label), st.line)
			w.set(cell("B", row), line.Amount, st.amount)
		}
		row++
	}

	row++
	w.merge(cell("A", row), cell("B", row))
	w.set(cell("A", row), "Estimate only. Final pricing is confirmed after a property visit.", st.note)

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error from a run of cell writes.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(ref string, value any, style int) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(SheetName, ref, value); err != nil {
		w.err = fmt.Errorf("set %s: %w", ref, err)
		return
	}
	if err := w.f.SetCellStyle(SheetName, ref, ref, style); err != nil {
		w.err = fmt.Errorf("style %s: %w", ref, err)
	}
}

func (w *sheetWriter) merge(from, to string) {
	if w.err != nil {
		return
	}
	if err := w.f.MergeCell(SheetName, from, to); err != nil {
		w.err = fmt.Errorf("merge %s:%s: %w", from, to, err)
	}
}

func cell(col string, row int) string {
	return col + strconv.Itoa(row)
}

// sanitizeCell stops labels being read as formulas.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
