package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"zero", 0, "£0"},
		{"three digits", 600, "£600"},
		{"four digits", 6438, "£6,438"},
		{"five digits", 11600, "£11,600"},
		{"six digits", 123456, "£123,456"},
		{"seven digits", 1234567, "£1,234,567"},
		{"negative", -2500, "-£2,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatGBP(tt.amount))
		})
	}
}

func TestLineItem_Value(t *testing.T) {
	assert.Equal(t, "£350", LineItem{Kind: LineExtra, Amount: 350}.Value())
	assert.Equal(t, "Applied", LineItem{Kind: LineExpress, Applied: true}.Value())
}

func TestQuote_FileName(t *testing.T) {
	q := &Quote{Reference: "SQ-1A2B3C4D"}
	assert.Equal(t, "quote-SQ-1A2B3C4D.xlsx", q.FileName(ExportXLSX))
	assert.Equal(t, "quote-SQ-1A2B3C4D.pdf", q.FileName(ExportPDF))
	assert.Equal(t, "quote-draft.pdf", (&Quote{}).FileName(ExportPDF))
}
