// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Back leaves the current screen for the menu.
	Back key.Binding

	Up   key.Binding
	Down key.Binding

	// Select picks the highlighted option, or toggles it on the extras step.
	Select key.Binding

	// Next advances a step; on the last step it submits the quote.
	Next key.Binding

	// Prev goes back a step, or from the result back to the extras.
	Prev key.Binding

	// Result screen actions.
	Reset      key.Binding
	Enquiry    key.Binding
	ExportXLSX key.Binding
	ExportPDF  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "choose"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l", "tab"),
			key.WithHelp("enter/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab", "backspace"),
			key.WithHelp("←", "prev"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start again"),
		),
		Enquiry: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enquiry"),
		),
		ExportXLSX: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save xlsx"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "save pdf"),
		),
	}
}

// ShortHelp returns the bindings shown on the menu.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// WizardHelp returns the bindings shown while answering steps.
func (k *KeyMap) WizardHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Prev, k.Back}
}

// ResultHelp returns the bindings shown on the quote result.
func (k *KeyMap) ResultHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Enquiry, k.ExportXLSX, k.ExportPDF, k.Prev}
}

// FullHelp returns every binding grouped for the help screen.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Next, k.Prev, k.Back},
		{k.Reset, k.Enquiry, k.ExportXLSX, k.ExportPDF},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
