package domain

import "fmt"

// ExportFormat identifies a quote document format.
type ExportFormat string

// Supported export formats.
const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// AllExportFormats returns every supported format.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportXLSX, ExportPDF}
}

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	return f == ExportXLSX || f == ExportPDF
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// ParseExportFormat converts a raw value into an ExportFormat.
func ParseExportFormat(v string) (ExportFormat, error) {
	f := ExportFormat(v)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, v)
	}
	return f, nil
}

// PriceSheet is a read-only snapshot of the price table for display.
// Multipliers are kept as strings so they print exactly as configured.
type PriceSheet struct {
	Currency           string                                 `json:"currency"`
	BasePrices         map[ServiceType]map[PropertySize]int64 `json:"base_prices"`
	PackageMultipliers map[PackageLevel]string                `json:"package_multipliers"`
	ExtraFees          map[ExtraKind]int64                    `json:"extra_fees"`
	ExpressMultiplier  string                                 `json:"express_multiplier"`
}
