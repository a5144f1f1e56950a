package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/anim"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/components/status"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/keymap"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/messages"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/styles"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/views/menu"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/views/prices"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/views/wizard"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	styles *styles.Styles
	keymap *keymap.KeyMap

	// settings holds branding and animation timings read at start-up.
	settings domain.AppSettings

	menuView   *menu.View
	wizardView *wizard.View
	pricesView *prices.View
	statusBar  *status.Bar
	help       help.Model

	// currentView tracks which view is active.
	currentView messages.ViewType

	// helpReturn is the view help goes back to.
	helpReturn messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: using default settings: %v", err)
		} else {
			settings = *loaded
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		styles:      s,
		keymap:      km,
		settings:    settings,
		menuView:    menu.NewView(s, settings.Enquiry.BusinessName),
		wizardView:  wizard.NewView(s, ports.Quote, ports.Export, wizard.Options{QuoteDuration: settings.Animation.QuoteDuration}),
		pricesView:  prices.NewView(s, ports.Quote, prices.Options{CounterDuration: settings.Animation.CounterDuration}),
		statusBar:   status.NewBar(s, km),
		help:        help.New(),
		currentView: messages.ViewMenu,
	}, nil
}

// WithOutputDir sets where exported quote documents are written.
func (a *App) WithOutputDir(dir string) *App {
	a.wizardView.SetOutputDir(dir)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(a.settings.Enquiry.BusinessName+" - Quote"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case anim.FrameMsg:
		// Frames reach every animated view; each drops ids it did not issue.
		var pricesCmd tea.Cmd
		a.wizardView, cmd = a.wizardView.Update(msg)
		a.pricesView, pricesCmd = a.pricesView.Update(msg)
		return a, tea.Batch(cmd, pricesCmd)

	case messages.QuoteSubmitted:
		a.statusBar.SetQuote(msg.Quote)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		}
		return a, nil

	case messages.ExportCompleted:
		a.wizardView, cmd = a.wizardView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if a.currentView != messages.ViewHelp && keymap.Matches(msg.String(), a.keymap.Help) {
		return a, a.switchTo(messages.ViewHelp)
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)

	case messages.ViewWizard:
		a.wizardView, cmd = a.wizardView.Update(msg)
		a.syncWizardStatus()

	case messages.ViewPrices:
		a.pricesView, cmd = a.pricesView.Update(msg)

	case messages.ViewHelp:
		switch msg.String() {
		case "esc", "?":
			return a, a.switchTo(a.helpReturn)
		case "q":
			return a, tea.Quit
		}
	}
	return a, cmd
}

// switchTo activates view and resets the status bar for it.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.helpReturn = a.currentView
	}
	a.currentView = view
	a.err = nil

	switch view {
	case messages.ViewWizard:
		a.syncWizardStatus()
		return a.wizardView.Init()
	case messages.ViewPrices:
		a.statusBar.Clear()
		return a.pricesView.Init()
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewMenu:
		a.statusBar.Clear()
	}
	return nil
}

func (a *App) syncWizardStatus() {
	w := a.wizardView.Wizard()
	if w == nil {
		return
	}
	if w.InResult() {
		if q, err := w.Quote(); err == nil {
			a.statusBar.SetQuote(q)
		}
		return
	}
	a.statusBar.SetState(status.StateQuoting)
	a.statusBar.SetMessage("")
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewWizard:
		body = a.wizardView.View()
	case messages.ViewPrices:
		body = a.pricesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Normal.Render(
		"Answer four short questions to get an instant estimate.\n" +
			"Choose with space, move on with enter. Extras can be toggled on and off.",
	))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and forwards them to every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.wizardView.SetDimensions(width, height)
	a.pricesView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
	a.help.Width = width
}
