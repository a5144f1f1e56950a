package services

import (
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEnquiryRecipient = "enquiry.recipient"
	keyEnquiryContact   = "enquiry.contact_name"
	keyEnquiryBusiness  = "enquiry.business_name"
	keyAnimCounterMS    = "animation.counter_ms"
	keyAnimQuoteMS      = "animation.quote_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling gaps with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Enquiry: domain.EnquirySettings{
			Recipient:    s.getString(keyEnquiryRecipient, defaults.Enquiry.Recipient),
			ContactName:  s.getString(keyEnquiryContact, defaults.Enquiry.ContactName),
			BusinessName: s.getString(keyEnquiryBusiness, defaults.Enquiry.BusinessName),
		},
		Animation: domain.AnimationSettings{
			CounterDuration: s.getMillis(keyAnimCounterMS, defaults.Animation.CounterDuration),
			QuoteDuration:   s.getMillis(keyAnimQuoteMS, defaults.Animation.QuoteDuration),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyEnquiryRecipient, settings.Enquiry.Recipient); err != nil {
		return fmt.Errorf("save enquiry recipient: %w", err)
	}
	if err := s.configStore.Set(keyEnquiryContact, settings.Enquiry.ContactName); err != nil {
		return fmt.Errorf("save enquiry contact_name: %w", err)
	}
	if err := s.configStore.Set(keyEnquiryBusiness, settings.Enquiry.BusinessName); err != nil {
		return fmt.Errorf("save enquiry business_name: %w", err)
	}
	if err := s.configStore.Set(keyAnimCounterMS, settings.Animation.CounterDuration.Milliseconds()); err != nil {
		return fmt.Errorf("save animation counter_ms: %w", err)
	}
	if err := s.configStore.Set(keyAnimQuoteMS, settings.Animation.QuoteDuration.Milliseconds()); err != nil {
		return fmt.Errorf("save animation quote_ms: %w", err)
	}
	return nil
}

// Set updates one setting by key, validating the value.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyEnquiryRecipient:
		if _, err := mail.ParseAddress(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		return s.configStore.Set(key, value)
	case keyEnquiryContact, keyEnquiryBusiness:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)
	case keyAnimCounterMS, keyAnimQuoteMS:
		ms, err := strconv.ParseInt(value, 10, 64)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%w: %s must be a positive number of milliseconds", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, ms)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}
}

// Keys lists the settable config keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyEnquiryRecipient,
		keyEnquiryContact,
		keyEnquiryBusiness,
		keyAnimCounterMS,
		keyAnimQuoteMS,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	if ms := s.configStore.GetInt(key); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultVal
}
