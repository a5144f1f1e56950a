package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/keymap"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/styles"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetQuote(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetQuote(&domain.Quote{Reference: "SQ-ABCDEF12", Total: 6438})

	assert.Equal(t, StateQuoted, bar.State())
	assert.Equal(t, "Quote SQ-ABCDEF12: £6,438", bar.Message())

	bar.SetQuote(nil)
	assert.Equal(t, StateQuoted, bar.State(), "nil quote is ignored")
}

func TestStatusBar_SetError(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError(errors.New("disk full"))
	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "disk full", bar.Message())

	bar.SetError(nil)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains []string
	}{
		{"ready", StateReady, "", []string{"Ready", "quit"}},
		{"quoting", StateQuoting, "", []string{"Building your quote", "choose"}},
		{"quoted", StateQuoted, "Quote SQ-1: £600", []string{"Quote SQ-1: £600", "start again"}},
		{"error with message", StateError, "boom", []string{"Error: boom"}},
		{"error without message", StateError, "", []string{"Error"}},
		{"help", StateHelp, "", []string{"Help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			out := bar.View()

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestStatusBar_ViewNarrow(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	assert.NotEmpty(t, bar.View())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("x")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}
