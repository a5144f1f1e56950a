package domain

import (
	"net/mail"
	"time"
)

const unknownDescription = "Unknown"

// EnquirySettings controls the pre-filled enquiry message.
type EnquirySettings struct {
	// Recipient is the address the enquiry is sent to.
	Recipient string

	// ContactName is used in the greeting line.
	ContactName string

	// BusinessName prefixes the enquiry subject.
	BusinessName string
}

// IsConfigured returns true if the enquiry can be addressed.
func (e EnquirySettings) IsConfigured() bool {
	if e.Recipient == "" {
		return false
	}
	_, err := mail.ParseAddress(e.Recipient)
	return err == nil
}

// AnimationSettings holds the reveal durations used by the TUI.
type AnimationSettings struct {
	// CounterDuration is the budget for generic counters.
	CounterDuration time.Duration

	// QuoteDuration is the budget for the quote total reveal.
	QuoteDuration time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	Enquiry   EnquirySettings
	Animation AnimationSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Enquiry: EnquirySettings{
			Recipient:    "jessie@cambridgecolourconsultants.co.uk",
			ContactName:  "Jessie",
			BusinessName: "Cambridge Property Styling",
		},
		Animation: AnimationSettings{
			CounterDuration: 2000 * time.Millisecond,
			QuoteDuration:   1500 * time.Millisecond,
		},
	}
}
