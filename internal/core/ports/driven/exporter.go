package driven

import "github.com/cambridgestyling/stylequote/internal/core/domain"

// QuoteExporter renders a priced quote into a document format.
// Implementations live in internal/adapters/driven/export.
type QuoteExporter interface {
	// Format returns the format this exporter produces.
	Format() domain.ExportFormat

	// Export renders the quote. Title heads the document.
	Export(quote *domain.Quote, title string) ([]byte, error)
}
