package driving

import "github.com/cambridgestyling/stylequote/internal/core/domain"

// QuoteService prices selections and produces enquiry text.
type QuoteService interface {
	// NewWizard starts a fresh wizard session at step 1.
	NewWizard() Wizard

	// Price computes the breakdown and total for a complete selection.
	// Incomplete selections return a *domain.ValidationError.
	Price(sel domain.QuoteSelection) (*domain.Quote, error)

	// PriceSheet returns the price table for display.
	PriceSheet() domain.PriceSheet

	// EnquiryText renders the pre-filled enquiry message body.
	EnquiryText(sel domain.QuoteSelection) (string, error)

	// EnquiryMailto renders a mailto: URL carrying the enquiry.
	EnquiryMailto(sel domain.QuoteSelection) (string, error)
}

// Wizard is one quote session: a linear state machine over the input
// steps followed by the result.
type Wizard interface {
	// Step returns the current step (StepResult once submitted).
	Step() domain.Step

	// InResult returns true once the quote has been submitted.
	InResult() bool

	// Selection returns a copy of the current selection.
	Selection() domain.QuoteSelection

	// SelectService sets the service type.
	SelectService(s domain.ServiceType) error

	// SelectSize sets the property size.
	SelectSize(p domain.PropertySize) error

	// SelectPackage sets the package level.
	SelectPackage(l domain.PackageLevel) error

	// SetExtra adds or removes an extra.
	SetExtra(kind domain.ExtraKind, present bool) error

	// CanAdvance reports whether the current step's requirement is met.
	CanAdvance() bool

	// Advance moves forward one step, or submits from the last step.
	Advance() error

	// Retreat moves back one step without discarding selections.
	Retreat()

	// Reset clears every selection and returns to step 1.
	Reset()

	// Progress returns the completed fraction for a progress bar.
	Progress() float64

	// Preview prices the current selection without submitting.
	Preview() (*domain.Quote, error)

	// Quote returns the submitted quote.
	Quote() (*domain.Quote, error)
}
