package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambridgestyling/stylequote/internal/adapters/driven/storage/memory"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// mockExporter records the last export request.
type mockExporter struct {
	format    domain.ExportFormat
	err       error
	gotQuote  *domain.Quote
	gotTitle  string
	callCount int
}

func (m *mockExporter) Format() domain.ExportFormat { return m.format }

func (m *mockExporter) Export(quote *domain.Quote, title string) ([]byte, error) {
	m.callCount++
	m.gotQuote = quote
	m.gotTitle = title
	if m.err != nil {
		return nil, m.err
	}
	return []byte(string(m.format) + ":" + quote.Reference), nil
}

func testQuote() *domain.Quote {
	return &domain.Quote{
		Reference: "SQ-ABCDEF12",
		CreatedAt: fixedNow,
		Total:     600,
	}
}

func TestExportService_Export(t *testing.T) {
	xlsx := &mockExporter{format: domain.ExportXLSX}
	pdf := &mockExporter{format: domain.ExportPDF}
	svc := NewExportService(nil, xlsx, pdf)

	data, err := svc.Export(testQuote(), domain.ExportPDF)

	require.NoError(t, err)
	assert.Equal(t, "pdf:SQ-ABCDEF12", string(data))
	assert.Equal(t, 1, pdf.callCount)
	assert.Equal(t, 0, xlsx.callCount)
	assert.Equal(t, "Cambridge Property Styling — Quote SQ-ABCDEF12", pdf.gotTitle)
}

func TestExportService_TitleFromSettings(t *testing.T) {
	store := memory.NewConfigStore()
	settings := NewSettingsService(store)
	require.NoError(t, settings.Set("enquiry.business_name", "Fenland Homes"))
	xlsx := &mockExporter{format: domain.ExportXLSX}

	_, err := NewExportService(settings, xlsx).Export(testQuote(), domain.ExportXLSX)

	require.NoError(t, err)
	assert.Equal(t, "Fenland Homes — Quote SQ-ABCDEF12", xlsx.gotTitle)
}

func TestExportService_Errors(t *testing.T) {
	failing := &mockExporter{format: domain.ExportXLSX, err: errors.New("sheet locked")}
	svc := NewExportService(nil, failing)

	_, err := svc.Export(nil, domain.ExportXLSX)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Export(testQuote(), domain.ExportPDF)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Export(testQuote(), domain.ExportXLSX)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export xlsx: sheet locked")
}

func TestExportService_Formats(t *testing.T) {
	svc := NewExportService(nil, &mockExporter{format: domain.ExportPDF}, nil, &mockExporter{format: domain.ExportXLSX})

	assert.Equal(t, []domain.ExportFormat{domain.ExportXLSX, domain.ExportPDF}, svc.Formats())
	assert.Empty(t, NewExportService(nil).Formats())
}
