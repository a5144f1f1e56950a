package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/anim"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/components/status"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/messages"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/services"
)

func newTestPorts() *Ports {
	return &Ports{
		Quote:    services.NewQuoteService(nil, nil),
		Export:   &MockExportService{Data: []byte("doc")},
		Settings: &MockSettingsService{},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingQuoteService)
	assert.Nil(t, app)
}

func TestNewApp_UsesSettings(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Enquiry.BusinessName = "Fen Interiors"
	ports := newTestPorts()
	ports.Settings = &MockSettingsService{Settings: &settings}

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	assert.Contains(t, app.View(), "Fen Interiors")
}

func TestNewApp_SettingsErrorFallsBack(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = &MockSettingsService{Err: errors.New("unreadable")}

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	assert.Contains(t, app.View(), "Cambridge Property Styling")
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 80, app.statusBar.Width())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_Update_ViewChanged(t *testing.T) {
	tests := []struct {
		name   string
		view   messages.ViewType
		state  status.State
		render string
	}{
		{"wizard", messages.ViewWizard, status.StateQuoting, "What service do you need?"},
		{"prices", messages.ViewPrices, status.StateReady, "Price List"},
		{"help", messages.ViewHelp, status.StateHelp, "Answer four short questions"},
		{"menu", messages.ViewMenu, status.StateReady, "Get a Quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			app.Update(messages.ViewChanged{View: tt.view})

			assert.Equal(t, tt.view, app.CurrentView())
			assert.Equal(t, tt.state, app.statusBar.State())
			assert.Contains(t, app.View(), tt.render)
		})
	}
}

func TestApp_MenuNavigatesToWizard(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewWizard, app.CurrentView())
}

func TestApp_WizardKeysAreForwarded(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWizard})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	w := app.wizardView.Wizard()
	assert.Equal(t, domain.ServiceAirbnb, w.Selection().ServiceType)
	assert.Equal(t, domain.StepSize, w.Step())
	assert.Equal(t, status.StateQuoting, app.statusBar.State())
}

func TestApp_WizardEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWizard})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_WizardSessionSurvivesMenuTrip(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWizard})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	app.Update(messages.ViewChanged{View: messages.ViewMenu})
	app.Update(messages.ViewChanged{View: messages.ViewWizard})

	assert.Equal(t, domain.ServiceAirbnb, app.wizardView.Wizard().Selection().ServiceType)
}

func TestApp_QuoteSubmitted(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.QuoteSubmitted{Quote: &domain.Quote{Reference: "SQ-1", Total: 600}})

	assert.Equal(t, status.StateQuoted, app.statusBar.State())
	assert.Contains(t, app.statusBar.Message(), "£600")
}

func TestApp_QuoteSubmittedWithError(t *testing.T) {
	app := newTestApp(t)
	failure := errors.New("price missing")

	app.Update(messages.QuoteSubmitted{Quote: &domain.Quote{Reference: "SQ-1"}, Err: failure})

	assert.Equal(t, failure, app.Err())
	assert.Equal(t, status.StateError, app.statusBar.State())
}

func TestApp_ExportCompleted(t *testing.T) {
	app := newTestApp(t)
	failure := errors.New("disk full")

	app.Update(messages.ExportCompleted{Format: domain.ExportPDF, Err: failure})

	assert.Equal(t, failure, app.Err())
	assert.Equal(t, status.StateError, app.statusBar.State())
}

func TestApp_FramesReachWizard(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(anim.FrameMsg{ID: -1})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd, "stale frames are dropped")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	failure := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: failure})

	assert.Equal(t, failure, app.Err())
	assert.Contains(t, app.View(), "Error: boom")
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
}

func TestApp_HelpKeys(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}

func TestApp_HelpKeyReturnsToPreviousView(t *testing.T) {
	tests := []struct {
		name string
		from messages.ViewType
		back tea.KeyMsg
	}{
		{"menu via esc", messages.ViewMenu, tea.KeyMsg{Type: tea.KeyEsc}},
		{"wizard via esc", messages.ViewWizard, tea.KeyMsg{Type: tea.KeyEsc}},
		{"wizard via ?", messages.ViewWizard, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}},
		{"prices via esc", messages.ViewPrices, tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			app.Update(messages.ViewChanged{View: tt.from})

			app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
			assert.Equal(t, messages.ViewHelp, app.CurrentView())
			assert.Equal(t, status.StateHelp, app.statusBar.State())

			app.Update(tt.back)
			assert.Equal(t, tt.from, app.CurrentView())
		})
	}
}

func TestApp_HelpKeyKeepsWizardSession(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWizard})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewWizard, app.CurrentView())
	assert.Equal(t, domain.StepSize, app.wizardView.Wizard().Step())
}

func TestApp_FramesReachPrices(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewPrices})
	require.NotNil(t, cmd, "prices count up on open")
	assert.True(t, app.pricesView.Counting())

	_, cmd = app.Update(cmd())

	assert.NotNil(t, cmd, "the count keeps ticking")
	assert.True(t, app.pricesView.Counting())
}

func TestApp_PricesKeysAreForwarded(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewPrices})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewWizard, app.CurrentView())
}

func TestApp_WithOutputDir(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, app, app.WithOutputDir(t.TempDir()))
}
