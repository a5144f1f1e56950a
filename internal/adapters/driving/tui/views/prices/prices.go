// Package prices provides the read-only price list view.
package prices

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/anim"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/messages"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/styles"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
)

const sizeColumnWidth = 20

// Options configures the price list view.
type Options struct {
	// CounterDuration is how long the figures take to count up when the
	// view opens. Zero shows them in full at once.
	CounterDuration time.Duration
}

// View represents the price list view.
type View struct {
	styles  *styles.Styles
	quotes  driving.QuoteService
	table   table.Model
	sheet   domain.PriceSheet
	counter *anim.Counter
	width   int
	height  int
	ready   bool
}

// NewView creates a new price list view.
func NewView(s *styles.Styles, quotes driving.QuoteService, opts Options) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		quotes:  quotes,
		counter: anim.NewCounter(opts.CounterDuration),
		width:   80,
		height:  24,
	}
	v.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(len(domain.AllPropertySizes())+1),
	)
	v.table.SetStyles(tableStyles(s))
	v.Refresh()
	return v
}

// Init reloads the prices and starts counting the figures up.
func (v *View) Init() tea.Cmd {
	if v.quotes == nil {
		return nil
	}
	cmd := v.counter.Start()
	v.Refresh()
	return cmd
}

// Refresh reloads the price sheet.
func (v *View) Refresh() {
	if v.quotes == nil {
		return
	}
	v.sheet = v.quotes.PriceSheet()
	v.table.SetRows(baseRows(v.sheet, v.counter))
}

// Update handles messages for the price list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case anim.FrameMsg:
		var cmd tea.Cmd
		v.counter, cmd = v.counter.Update(msg)
		v.table.SetRows(baseRows(v.sheet, v.counter))
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "enter":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewWizard}
			}
		case "q":
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the price list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.quotes == nil {
		return v.styles.Error.Render("Prices are not available.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Price List"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Base prices by property size, before package and extras."))
	b.WriteString("\n\n")
	b.WriteString(v.table.View())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Packages"))
	b.WriteString("\n")
	for _, l := range domain.AllPackageLevels() {
		m, ok := v.sheet.PackageMultipliers[l]
		if !ok {
			continue
		}
		b.WriteString(row(v.styles, l.Label(), "×"+m))
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Extras"))
	b.WriteString("\n")
	for _, e := range domain.AllExtraKinds() {
		if e.IsMultiplicative() {
			b.WriteString(row(v.styles, e.Label(), "×"+v.sheet.ExpressMultiplier))
			continue
		}
		if fee, ok := v.sheet.ExtraFees[e]; ok {
			b.WriteString(row(v.styles, e.Label(), "+"+domain.FormatGBP(v.counter.Amount(fee))))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] get a quote  [esc] back  [q] quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Sheet returns the price sheet on display.
func (v *View) Sheet() domain.PriceSheet {
	return v.sheet
}

// Counting reports whether the figures are still counting up.
func (v *View) Counting() bool {
	return v.counter.Running()
}

func columns() []table.Column {
	cols := []table.Column{{Title: "Property", Width: sizeColumnWidth}}
	for _, s := range domain.AllServiceTypes() {
		cols = append(cols, table.Column{Title: s.Label(), Width: lipgloss.Width(s.Label())})
	}
	return cols
}

func baseRows(sheet domain.PriceSheet, counter *anim.Counter) []table.Row {
	sizes := domain.AllPropertySizes()
	rows := make([]table.Row, 0, len(sizes))
	for _, p := range sizes {
		r := table.Row{p.Label()}
		for _, s := range domain.AllServiceTypes() {
			cell := "-"
			if price, ok := sheet.BasePrices[s][p]; ok {
				cell = domain.FormatGBP(counter.Amount(price))
			}
			r = append(r, cell)
		}
		rows = append(rows, r)
	}
	return rows
}

func tableStyles(s *styles.Styles) table.Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Theme().Border).
		BorderBottom(true).
		Bold(true).
		Foreground(s.Theme().Primary)
	ts.Selected = ts.Selected.
		Foreground(s.Theme().Foreground).
		Background(s.Theme().Track).
		Bold(false)
	return ts
}

func row(s *styles.Styles, label, value string) string {
	return fmt.Sprintf("  %-*s %s\n", sizeColumnWidth+14, label, s.Price.Render(value))
}
