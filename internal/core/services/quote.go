package services

import (
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// Ensure QuoteService implements the interface.
var _ driving.QuoteService = (*QuoteService)(nil)

// QuoteService prices selections against a validated price table.
type QuoteService struct {
	table    *PriceTable
	settings driving.SettingsService
}

// NewQuoteService creates a quote service. A nil table uses the default
// price list; a nil settings service uses the default enquiry settings.
func NewQuoteService(table *PriceTable, settings driving.SettingsService) *QuoteService {
	if table == nil {
		table = DefaultPriceTable()
	}
	return &QuoteService{
		table:    table,
		settings: settings,
	}
}

// NewWizard starts a fresh wizard session.
func (s *QuoteService) NewWizard() driving.Wizard {
	return NewQuoteWizard(s.table)
}

// Price computes the quote for a complete selection. Unknown choices
// return domain.ErrInvalidInput; missing ones a *domain.ValidationError.
func (s *QuoteService) Price(sel domain.QuoteSelection) (*domain.Quote, error) {
	w, err := s.load(sel)
	if err != nil {
		return nil, err
	}
	q, err := w.Preview()
	if err != nil {
		return nil, err
	}
	logger.Debug("priced %s/%s/%s extras=%v total=%d",
		sel.ServiceType, sel.PropertySize, sel.PackageLevel, sel.Extras, q.Total)
	return q, nil
}

// PriceSheet returns the price table for display.
func (s *QuoteService) PriceSheet() domain.PriceSheet {
	return s.table.Sheet()
}

// EnquiryText renders the enquiry message body.
func (s *QuoteService) EnquiryText(sel domain.QuoteSelection) (string, error) {
	w, err := s.load(sel)
	if err != nil {
		return "", err
	}
	return EnquiryText(w.Selection(), s.table, s.enquirySettings())
}

// EnquiryMailto renders the enquiry as a mailto: URL.
func (s *QuoteService) EnquiryMailto(sel domain.QuoteSelection) (string, error) {
	w, err := s.load(sel)
	if err != nil {
		return "", err
	}
	return EnquiryMailto(w.Selection(), s.table, s.enquirySettings())
}

// load replays sel through a fresh wizard so every choice is checked the
// same way as an interactive session. Empty fields are left unset.
func (s *QuoteService) load(sel domain.QuoteSelection) (*QuoteWizard, error) {
	w := NewQuoteWizard(s.table)
	if sel.ServiceType != "" {
		if err := w.SelectService(sel.ServiceType); err != nil {
			return nil, err
		}
	}
	if sel.PropertySize != "" {
		if err := w.SelectSize(sel.PropertySize); err != nil {
			return nil, err
		}
	}
	if sel.PackageLevel != "" {
		if err := w.SelectPackage(sel.PackageLevel); err != nil {
			return nil, err
		}
	}
	for _, e := range sel.Extras {
		if err := w.SetExtra(e, true); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (s *QuoteService) enquirySettings() domain.EnquirySettings {
	if s.settings == nil {
		return domain.DefaultAppSettings().Enquiry
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("using default enquiry settings: %v", err)
		return domain.DefaultAppSettings().Enquiry
	}
	return settings.Enquiry
}
