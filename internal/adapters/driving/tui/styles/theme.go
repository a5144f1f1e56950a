// Package styles provides the colour theme and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent, used for titles and the progress fill.
	Primary lipgloss.Color

	// Secondary highlights the selected option.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for hints and disabled controls.
	Muted lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Border outlines cards.
	Border lipgloss.Color

	// Track is the unfilled part of the progress bar.
	Track lipgloss.Color
}

// DefaultTheme returns a warm, muted palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#C2794D"), // Terracotta
		Secondary:  lipgloss.Color("#8FA98F"), // Sage
		Foreground: lipgloss.Color("#EDE6DA"), // Linen
		Muted:      lipgloss.Color("#8A8378"), // Stone
		Success:    lipgloss.Color("#A8C69F"), // Leaf
		Warning:    lipgloss.Color("#E8C07D"), // Ochre
		Error:      lipgloss.Color("#E07A6F"), // Brick
		Border:     lipgloss.Color("#5B554C"), // Umber
		Track:      lipgloss.Color("#3A362F"), // Charcoal
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Cursor marks the highlighted option row.
	Cursor lipgloss.Style

	// Chosen renders an option that is part of the selection.
	Chosen lipgloss.Style

	// Price renders amounts beside options and in the breakdown.
	Price lipgloss.Style

	// Amount renders the large quote total.
	Amount lipgloss.Style

	// Button and ButtonDisabled render the step navigation.
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style

	// Card frames the wizard and result panels.
	Card lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Chosen: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Price: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Track).
			Padding(0, 2),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Track).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
