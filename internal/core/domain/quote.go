package domain

import (
	"strconv"
	"strings"
	"time"
)

// LineKind identifies the role of a breakdown line.
type LineKind string

// Breakdown line kinds, in the order they appear.
const (
	LineBase    LineKind = "base"
	LinePackage LineKind = "package"
	LineExtra   LineKind = "extra"
	LineExpress LineKind = "express"
	LineTotal   LineKind = "total"
)

// AppliedMarker is shown in place of an amount for multiplicative extras.
const AppliedMarker = "Applied"

// LineItem is one row of a quote breakdown.
type LineItem struct {
	Kind  LineKind `json:"kind"`
	Label string   `json:"label"`

	// Amount is in whole pounds. It is meaningless when Applied is set.
	Amount int64 `json:"amount"`

	// Applied marks a line whose effect is folded into the total.
	Applied bool `json:"applied,omitempty"`
}

// Value renders the amount column.
func (l LineItem) Value() string {
	if l.Applied {
		return AppliedMarker
	}
	return FormatGBP(l.Amount)
}

// Quote is a priced selection ready to display or export.
type Quote struct {
	Reference string         `json:"reference"`
	CreatedAt time.Time      `json:"created_at"`
	Selection QuoteSelection `json:"selection"`
	Lines     []LineItem     `json:"lines"`
	Total     int64          `json:"total"`
}

// FileName returns the default document name for the quote, e.g.
// quote-SQ-1A2B3C4D.pdf.
func (q *Quote) FileName(format ExportFormat) string {
	ref := q.Reference
	if ref == "" {
		ref = "draft"
	}
	return "quote-" + ref + "." + format.String()
}

// FormatGBP formats whole pounds with thousands separators, e.g. £11,600.
func FormatGBP(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "£" + groupThousands(strconv.FormatInt(amount, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
