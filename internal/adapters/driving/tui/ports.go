// Package tui provides an interactive terminal user interface for the quote
// calculator. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Quote prices selections and starts wizard sessions.
	Quote driving.QuoteService

	// Export renders quotes as documents. Optional.
	Export driving.ExportService

	// Settings supplies branding and animation timings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	quote driving.QuoteService,
	export driving.ExportService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Quote:    quote,
		Export:   export,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Quote == nil {
		return ErrMissingQuoteService
	}
	return nil
}
