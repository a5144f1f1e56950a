package driving

import "github.com/cambridgestyling/stylequote/internal/core/domain"

// ExportService renders quotes as documents.
type ExportService interface {
	// Export renders the quote in the given format.
	Export(quote *domain.Quote, format domain.ExportFormat) ([]byte, error)

	// Formats lists the formats with a registered exporter.
	Formats() []domain.ExportFormat
}
