// Package pdf renders quotes as printable PDF documents.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.QuoteExporter = (*Exporter)(nil)

var (
	inkMuted  = &props.Color{Red: 100, Green: 100, Blue: 100}
	inkFaint  = &props.Color{Red: 140, Green: 140, Blue: 140}
	headerBg  = &props.Color{Red: 47, Green: 59, Blue: 53}
	stripeBg  = &props.Color{Red: 246, Green: 244, Blue: 240}
	totalBg   = &props.Color{Red: 232, Green: 228, Blue: 218}
	whiteText = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Exporter renders a single-page A4 quote.
type Exporter struct{}

// New creates a PDF exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns domain.ExportPDF.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportPDF
}

// Export renders the quote and returns the PDF bytes.
func (e *Exporter) Export(quote *domain.Quote, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addHeader(m, quote, title)
	addChoices(m, quote.Selection)
	addLines(m, quote.Lines)
	addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, quote *domain.Quote, title string) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(title, props.Text{
				Size:  15,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New("Reference: "+quote.Reference, props.Text{
				Size:  9,
				Color: inkMuted,
			})),
			col.New(6).Add(text.New("Date: "+quote.CreatedAt.Format("2 January 2006"), props.Text{
				Size:  9,
				Align: align.Right,
				Color: inkMuted,
			})),
		),
		row.New(6),
	)
}

func addChoices(m core.Maroto, sel domain.QuoteSelection) {
	label := props.Text{Size: 9, Style: fontstyle.Bold}
	value := props.Text{Size: 9}

	choices := [][2]string{
		{"Service", sel.ServiceType.Label()},
		{"Property Size", sel.PropertySize.Label()},
		{"Package", sel.PackageLevel.Label()},
	}
	for _, c := range choices {
		m.AddRows(row.New(6).Add(
			col.New(4).Add(text.New(c[0], label)),
			col.New(8).Add(text.New(c[1], value)),
		))
	}
	m.AddRows(row.New(6))
}

func addLines(m core.Maroto, lines []domain.LineItem) {
	head := props.Text{Size: 9, Style: fontstyle.Bold, Color: whiteText}
	headRight := head
	headRight.Align = align.Right
	headerCell := &props.Cell{BackgroundColor: headerBg}

	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("Item", head)).WithStyle(headerCell),
		col.New(3).Add(text.New("Amount", headRight)).WithStyle(headerCell),
	))

	for i, line := range lines {
		labelText := props.Text{Size: 9}
		amountText := props.Text{Size: 9, Align: align.Right}
		var cell *props.Cell
		if i%2 == 1 {
			cell = &props.Cell{BackgroundColor: stripeBg}
		}

		amount := domain.FormatGBP(line.Amount)
		switch {
		case line.Kind == domain.LineTotal:
			labelText.Style = fontstyle.Bold
			labelText.Size = 11
			amountText.Style = fontstyle.Bold
			amountText.Size = 11
			cell = &props.Cell{BackgroundColor: totalBg}
		case line.Applied:
			amount = domain.AppliedMarker
			amountText.Style = fontstyle.Italic
		}

		labelCol := col.New(9).Add(text.New(line.Label, labelText))
		amountCol := col.New(3).Add(text.New(amount, amountText))
		if cell != nil {
			labelCol = labelCol.WithStyle(cell)
			amountCol = amountCol.WithStyle(cell)
		}
		m.AddRows(row.New(8).Add(labelCol, amountCol))
	}
}

func addFooter(m core.Maroto) {
	m.AddRows(
		row.New(8),
		row.New(6).Add(
			col.New(12).Add(text.New(
				"Estimate only. Final pricing is confirmed after a property visit.",
				props.Text{Size: 8, Style: fontstyle.Italic, Color: inkFaint},
			)),
		),
	)
}
