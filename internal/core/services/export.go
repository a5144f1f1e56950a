package services

import (
	"fmt"
	"slices"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService dispatches quotes to the exporter registered for a format.
type ExportService struct {
	exporters map[domain.ExportFormat]driven.QuoteExporter
	settings  driving.SettingsService
}

// NewExportService creates an export service. Nil exporters are skipped;
// a later exporter for the same format replaces an earlier one.
func NewExportService(settings driving.SettingsService, exporters ...driven.QuoteExporter) *ExportService {
	s := &ExportService{
		exporters: make(map[domain.ExportFormat]driven.QuoteExporter, len(exporters)),
		settings:  settings,
	}
	for _, e := range exporters {
		if e == nil {
			continue
		}
		s.exporters[e.Format()] = e
	}
	return s
}

// Export renders the quote in the given format.
func (s *ExportService) Export(quote *domain.Quote, format domain.ExportFormat) ([]byte, error) {
	if quote == nil {
		return nil, fmt.Errorf("%w: no quote to export", domain.ErrInvalidInput)
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: no exporter for %q", domain.ErrNotFound, format)
	}

	title := domain.DefaultAppSettings().Enquiry.BusinessName
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			title = settings.Enquiry.BusinessName
		}
	}

	data, err := exporter.Export(quote, title+" — Quote "+quote.Reference)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	logger.Debug("exported quote %s as %s (%d bytes)", quote.Reference, format, len(data))
	return data, nil
}

// Formats lists the formats with a registered exporter, in a stable order.
func (s *ExportService) Formats() []domain.ExportFormat {
	formats := make([]domain.ExportFormat, 0, len(s.exporters))
	for _, f := range domain.AllExportFormats() {
		if _, ok := s.exporters[f]; ok {
			formats = append(formats, f)
		}
	}
	return slices.Clip(formats)
}
