package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// Ensure QuoteWizard implements the interface.
var _ driving.Wizard = (*QuoteWizard)(nil)

// QuoteWizard is one quote session. It is owned by a single view and is
// not safe for concurrent use; UI events reach it one at a time.
type QuoteWizard struct {
	table *PriceTable
	now   func() time.Time
	newID func() string

	step      domain.Step
	selection domain.QuoteSelection

	// quote is set only while in the result state.
	quote *domain.Quote
}

// NewQuoteWizard creates a wizard at step 1 with nothing selected.
func NewQuoteWizard(table *PriceTable) *QuoteWizard {
	if table == nil {
		table = DefaultPriceTable()
	}
	return &QuoteWizard{
		table: table,
		now:   time.Now,
		newID: newQuoteReference,
		step:  domain.StepService,
	}
}

// Step returns the current step.
func (w *QuoteWizard) Step() domain.Step {
	return w.step
}

// InResult returns true once the quote has been submitted.
func (w *QuoteWizard) InResult() bool {
	return w.step == domain.StepResult
}

// Selection returns a copy of the current selection.
func (w *QuoteWizard) Selection() domain.QuoteSelection {
	return w.selection.Clone()
}

// SelectService sets the service type.
func (w *QuoteWizard) SelectService(s domain.ServiceType) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", domain.ErrInvalidInput, s)
	}
	w.selection.ServiceType = s
	w.refresh()
	return nil
}

// SelectSize sets the property size.
func (w *QuoteWizard) SelectSize(p domain.PropertySize) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: unknown property size %q", domain.ErrInvalidInput, p)
	}
	w.selection.PropertySize = p
	w.refresh()
	return nil
}

// SelectPackage sets the package level.
func (w *QuoteWizard) SelectPackage(l domain.PackageLevel) error {
	if !l.IsValid() {
		return fmt.Errorf("%w: unknown package level %q", domain.ErrInvalidInput, l)
	}
	w.selection.PackageLevel = l
	w.refresh()
	return nil
}

// SetExtra toggles membership of kind in the extras. It is accepted in
// any state; in the result state the quote is repriced.
func (w *QuoteWizard) SetExtra(kind domain.ExtraKind, present bool) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown extra %q", domain.ErrInvalidInput, kind)
	}
	w.selection = w.selection.WithExtra(kind, present)
	w.refresh()
	return nil
}

// CanAdvance reports whether the current step's requirement is met.
func (w *QuoteWizard) CanAdvance() bool {
	if w.InResult() {
		return false
	}
	return w.selection.Satisfies(w.step)
}

// Advance moves to the next step. A missing requirement returns a
// *domain.ValidationError and leaves the wizard untouched. From the last
// step it always enters the result state; if pricing then fails the
// result carries a zero total and the error is returned.
func (w *QuoteWizard) Advance() error {
	switch {
	case w.InResult():
		return nil
	case !w.selection.Satisfies(w.step):
		logger.Debug("wizard: step %d blocked, %s missing", w.step, w.step.Required())
		return &domain.ValidationError{Step: w.step, Field: w.step.Required()}
	case w.step < domain.StepExtras:
		w.step++
		logger.Debug("wizard: advanced to step %d", w.step)
		return nil
	}

	w.step = domain.StepResult
	quote, err := w.price()
	w.quote = quote
	if err != nil {
		logger.Warn("wizard: pricing failed: %v", err)
		return fmt.Errorf("submit quote: %w", err)
	}
	logger.Info("wizard: quote %s submitted, total %s", quote.Reference, domain.FormatGBP(quote.Total))
	return nil
}

// Retreat moves back one step. Selections are kept. From step 1 it does
// nothing; from the result it returns to the last input step.
func (w *QuoteWizard) Retreat() {
	switch {
	case w.InResult():
		w.step = domain.StepExtras
		w.quote = nil
	case w.step > domain.StepService:
		w.step--
	default:
		return
	}
	logger.Debug("wizard: retreated to step %d", w.step)
}

// Reset clears every selection and returns to step 1.
func (w *QuoteWizard) Reset() {
	w.step = domain.StepService
	w.selection = domain.QuoteSelection{}
	w.quote = nil
	logger.Debug("wizard: reset")
}

// Progress returns step/TotalSteps, or 1 in the result state.
func (w *QuoteWizard) Progress() float64 {
	if w.InResult() {
		return 1
	}
	return float64(w.step) / float64(domain.TotalSteps)
}

// Total prices the current selection. Incomplete selections price at 0.
func (w *QuoteWizard) Total() (int64, error) {
	return Calculate(w.selection, w.table)
}

// Breakdown returns the priced lines for the current selection.
func (w *QuoteWizard) Breakdown() ([]domain.LineItem, error) {
	return BuildBreakdown(w.selection, w.table)
}

// Preview prices the current selection without submitting it.
func (w *QuoteWizard) Preview() (*domain.Quote, error) {
	if err := requireComplete(w.selection); err != nil {
		return nil, err
	}
	return w.price()
}

// Quote returns a copy of the submitted quote.
func (w *QuoteWizard) Quote() (*domain.Quote, error) {
	if !w.InResult() || w.quote == nil {
		return nil, domain.ErrNotInResult
	}
	q := *w.quote
	q.Selection = w.quote.Selection.Clone()
	q.Lines = append([]domain.LineItem(nil), w.quote.Lines...)
	return &q, nil
}

// price builds a quote for the current selection. On error the quote is
// still returned with a zero total so the result can show an error state.
func (w *QuoteWizard) price() (*domain.Quote, error) {
	q := &domain.Quote{
		Reference: w.newID(),
		CreatedAt: w.now(),
		Selection: w.selection.Clone(),
	}
	lines, err := BuildBreakdown(q.Selection, w.table)
	if err != nil {
		return q, err
	}
	q.Lines = lines
	q.Total = lines[len(lines)-1].Amount
	return q, nil
}

// refresh reprices a submitted quote after its selection changed.
// The reference is kept so the same session keeps one identifier.
func (w *QuoteWizard) refresh() {
	if !w.InResult() || w.quote == nil {
		return
	}
	ref := w.quote.Reference
	q, err := w.price()
	q.Reference = ref
	w.quote = q
	if err != nil {
		logger.Warn("wizard: repricing failed: %v", err)
	}
}

// newQuoteReference returns a short human-readable quote id.
func newQuoteReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SQ-" + strings.ToUpper(id[:8])
}
