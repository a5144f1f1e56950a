// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewWizard is the step-by-step quote calculator.
	ViewWizard
	// ViewPrices is the read-only price list.
	ViewPrices
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewWizard:
		return "wizard"
	case ViewPrices:
		return "prices"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// QuoteSubmitted is sent when the wizard enters its result state.
type QuoteSubmitted struct {
	Quote *domain.Quote
	Err   error
}

// ExportCompleted reports the outcome of writing a quote document.
type ExportCompleted struct {
	Format domain.ExportFormat
	Path   string
	Err    error
}
