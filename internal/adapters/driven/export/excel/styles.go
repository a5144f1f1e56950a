package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// styles holds the style ids registered on a workbook.
type styles struct {
	title       int
	subtitle    int
	label       int
	plain       int
	header      int
	line        int
	amount      int
	marker      int
	totalLabel  int
	totalAmount int
	note        int
}

func newStyles(f *excelize.File) (*styles, error) {
	numFmt := gbpFormat
	s := &styles{}
	defs := []struct {
		name  string
		dst   *int
		style *excelize.Style
	}{
		{"title", &s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{"subtitle", &s.subtitle, &excelize.Style{Font: &excelize.Font{Size: 11, Color: "#555555"}}},
		{"label", &s.label, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}}},
		{"plain", &s.plain, &excelize.Style{Font: &excelize.Font{Size: 10}}},
		{"header", &s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F3B35"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"line", &s.line, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{"amount", &s.amount, &excelize.Style{
			Font:         &excelize.Font{Size: 10},
			Border:       thinBorders(),
			CustomNumFmt: &numFmt,
		}},
		{"marker", &s.marker, &excelize.Style{
			Font:      &excelize.Font{Size: 10, Italic: true},
			Border:    thinBorders(),
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{"totalLabel", &s.totalLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Border:    thinBorders(),
		}},
		{"totalAmount", &s.totalAmount, &excelize.Style{
			Font:         &excelize.Font{Bold: true, Size: 11},
			Border:       thinBorders(),
			CustomNumFmt: &numFmt,
		}},
		{"note", &s.note, &excelize.Style{Font: &excelize.Font{Size: 9, Italic: true, Color: "#777777"}}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.dst = id
	}
	return s, nil
}

// thinBorders returns a thin border on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#BBBBBB", Style: 1}
	}
	return borders
}
